// Package imagehost turns image references into hosted URLs.
//
// Uploads are best effort: an Uploader never returns an error. A failed upload
// yields ok == false and the caller keeps the raw reference.
package imagehost

import (
	"context"

	"github.com/reusedev/wp-hub/config"
	"github.com/reusedev/wp-hub/internal/consts"
	"github.com/reusedev/wp-hub/internal/modules/storage/ali"
)

type Uploader interface {
	Upload(ctx context.Context, reference, apiKey string) (url string, ok bool)
}

// New builds the uploader selected by image_host.provider.
func New(cfg *config.Config) (Uploader, error) {
	switch consts.ImageProvider(cfg.ImageHost.Provider) {
	case consts.AliOSS:
		client, err := ali.NewOSS(cfg.AliOss)
		if err != nil {
			return nil, err
		}
		return NewAliOSS(client, cfg.ImageHostTimeout(), cfg.URLExpires()), nil
	default:
		return NewFreeImage(cfg.ImageHost.UploadURL, cfg.ImageHostTimeout()), nil
	}
}
