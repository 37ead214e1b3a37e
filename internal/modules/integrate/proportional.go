package integrate

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/reusedev/wp-hub/internal/consts"
)

const (
	styleFeaturedHeight = "height: 400px;"
	styleInlineHeight   = "height: 50%;"
)

// Proportional places images by how far into the text an element sits.
// Lengths are counted in runes over the same nodes that get rendered.
type Proportional struct{}

func (Proportional) Name() consts.Strategy { return consts.Proportional }

func (Proportional) Place(doc *goquery.Document, p Placement) {
	placeFeatured(doc, newImg(p.Featured, altFeatured, styleFeaturedHeight))

	total := textLength(doc.Selection)
	fiftyPct := total / 2
	eightyPct := total * 4 / 5

	var heading, paragraph *goquery.Selection
	cumulative := 0
	doc.Find("p, h2").Each(func(_ int, s *goquery.Selection) {
		cumulative += textLength(s)
		switch goquery.NodeName(s) {
		case "h2":
			if cumulative <= fiftyPct {
				heading = s
			}
		case "p":
			if cumulative <= eightyPct {
				paragraph = s
			}
		}
	})

	if heading != nil && p.Image1 != "" {
		heading.BeforeNodes(newImg(p.Image1, altImage1, styleInlineHeight))
	}
	if paragraph != nil && p.Image2 != "" {
		img := newImg(p.Image2, altImage2, styleInlineHeight)
		if paragraph.Get(0).NextSibling != nil {
			paragraph.AfterNodes(img)
		} else {
			paragraph.Parent().AppendNodes(img)
		}
	}
}
