package integrate

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parse builds a document from content. Input with <html> or <body> is parsed as a whole
// document. Anything else is parsed as children of <body> and kept under a bare document
// node, so leading comments, <style>, <script> and <title> stay where they were.
func parse(content string) (*goquery.Document, error) {
	if isFullDocument(content) {
		return goquery.NewDocumentFromReader(strings.NewReader(content))
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Body.String(),
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root), nil
}

func isFullDocument(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "<html") || strings.Contains(lower, "<body")
}

// textLength counts the runes of visible text under s. Script, style and template bodies are not text.
func textLength(s *goquery.Selection) int {
	total := 0
	for _, n := range s.Nodes {
		total += nodeTextLength(n)
	}
	return total
}

func nodeTextLength(n *html.Node) int {
	switch n.Type {
	case html.TextNode:
		return utf8.RuneCountInString(n.Data)
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return 0
		}
	case html.CommentNode, html.DoctypeNode:
		return 0
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += nodeTextLength(c)
	}
	return total
}
