package integrate

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/reusedev/wp-hub/internal/consts"
)

const styleCentered = "display: block; margin: auto;"

// image1 goes before the fourth <h2>
const structuralImage1Index = 3

// Structural places images by counting headings.
type Structural struct{}

func (Structural) Name() consts.Strategy { return consts.Structural }

func (Structural) Place(doc *goquery.Document, p Placement) {
	placeFeatured(doc, newImg(p.Featured, altFeatured, styleCentered))

	h2 := doc.Find("h2")
	if h2.Length() > structuralImage1Index && p.Image1 != "" {
		h2.Eq(structuralImage1Index).BeforeNodes(newImg(p.Image1, altImage1, styleCentered))
	}
	if h2.Length() > 0 && p.Image2 != "" {
		h2.Last().BeforeNodes(newImg(p.Image2, altImage2, styleCentered))
	}
}
