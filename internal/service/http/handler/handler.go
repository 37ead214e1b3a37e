package handler

import (
	"context"

	"github.com/reusedev/wp-hub/internal/modules/integrate"
	"github.com/reusedev/wp-hub/internal/modules/wordpress"
)

type postCreator interface {
	CreatePost(ctx context.Context, post wordpress.PostRequest) (any, error)
}

type imageIntegrator interface {
	IntegrateImages(ctx context.Context, images integrate.Images, apiKey string) (string, error)
}

type Handler struct {
	poster     postCreator
	integrator imageIntegrator
}

func New(poster postCreator, integrator imageIntegrator) *Handler {
	return &Handler{
		poster:     poster,
		integrator: integrator,
	}
}
