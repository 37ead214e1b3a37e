// Package integrate inserts hosted images into an HTML fragment.
package integrate

import (
	"context"

	"github.com/reusedev/wp-hub/internal/modules/imagehost"
	"golang.org/x/sync/errgroup"
)

// Images are the inputs of one integration. Each image field is a reference: a URL or
// an identifier the image host accepts.
type Images struct {
	Content  string
	Featured string
	Image1   string
	Image2   string
}

type Integrator struct {
	uploader   imagehost.Uploader
	strategy   Strategy
	concurrent bool
}

func New(uploader imagehost.Uploader, strategy Strategy, concurrent bool) *Integrator {
	return &Integrator{uploader: uploader, strategy: strategy, concurrent: concurrent}
}

func (i *Integrator) Strategy() Strategy {
	return i.strategy
}

// IntegrateImages uploads the references and returns content with <img> tags inserted.
// Empty content comes back unchanged without any upload.
func (i *Integrator) IntegrateImages(ctx context.Context, images Images, apiKey string) (string, error) {
	if images.Content == "" {
		return images.Content, nil
	}

	placement := i.resolve(ctx, images, apiKey)

	doc, err := parse(images.Content)
	if err != nil {
		return "", err
	}
	i.strategy.Place(doc, placement)
	return doc.Html()
}

// resolve maps every supplied reference to its hosted URL, falling back to the reference itself.
func (i *Integrator) resolve(ctx context.Context, images Images, apiKey string) Placement {
	refs := []string{images.Featured, images.Image1, images.Image2}
	srcs := make([]string, len(refs))
	upload := func(idx int) {
		ref := refs[idx]
		if ref == "" {
			return
		}
		srcs[idx] = ref
		if u, ok := i.uploader.Upload(ctx, ref, apiKey); ok {
			srcs[idx] = u
		}
	}

	if i.concurrent {
		var g errgroup.Group
		for idx := range refs {
			g.Go(func() error {
				upload(idx)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for idx := range refs {
			upload(idx)
		}
	}
	return Placement{Featured: srcs[0], Image1: srcs[1], Image2: srcs[2]}
}
