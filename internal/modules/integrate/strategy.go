package integrate

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/reusedev/wp-hub/internal/consts"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	altFeatured = "Featured Image"
	altImage1   = "Image 1"
	altImage2   = "Image 2"
)

// Placement holds the src of each image. An empty Image1 or Image2 means the image was not supplied.
type Placement struct {
	Featured string
	Image1   string
	Image2   string
}

// Strategy decides where images go and inserts them into doc in place.
type Strategy interface {
	Name() consts.Strategy
	Place(doc *goquery.Document, p Placement)
}

func StrategyByName(name string) (Strategy, error) {
	switch consts.Strategy(name) {
	case consts.Structural:
		return Structural{}, nil
	case consts.Proportional:
		return Proportional{}, nil
	default:
		return nil, fmt.Errorf("unknown placement strategy %q", name)
	}
}

func newImg(src, alt, style string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Img.String(),
		DataAtom: atom.Img,
		Attr: []html.Attribute{
			{Key: "src", Val: src},
			{Key: "alt", Val: alt},
			{Key: "style", Val: style},
		},
	}
}

// placeFeatured puts img before the first <p>, else at the start of <body>, else at the start of the document.
func placeFeatured(doc *goquery.Document, img *html.Node) {
	if p := doc.Find("p").First(); p.Length() > 0 {
		p.BeforeNodes(img)
		return
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		body.PrependNodes(img)
		return
	}
	doc.PrependNodes(img)
}
