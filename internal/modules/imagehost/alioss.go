package imagehost

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/reusedev/wp-hub/internal/modules/logs"
	"github.com/reusedev/wp-hub/tools"
)

type objectStore interface {
	UploadImage(ctx context.Context, b []byte) (string, error)
	URL(ctx context.Context, key string, expire time.Duration) (string, error)
}

// AliOSS copies a remote image into an OSS bucket and hands out a presigned URL.
// The api key of the request is not used.
type AliOSS struct {
	store   objectStore
	client  *http.Client
	expires time.Duration
}

func NewAliOSS(store objectStore, timeout, expires time.Duration) *AliOSS {
	return &AliOSS{store: store, client: &http.Client{Timeout: timeout}, expires: expires}
}

func (a *AliOSS) Upload(ctx context.Context, reference, _ string) (string, bool) {
	imageURL, err := a.upload(ctx, reference)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("reference", reference).Msg("imagehost-AliOSS-Upload")
		return "", false
	}
	return imageURL, true
}

func (a *AliOSS) upload(ctx context.Context, reference string) (string, error) {
	if !tools.IsHTTPURL(reference) {
		return "", fmt.Errorf("reference is not an http(s) url")
	}
	b, _, err := tools.GetOnlineImage(ctx, a.client, reference)
	if err != nil {
		return "", err
	}
	key, err := a.store.UploadImage(ctx, b)
	if err != nil {
		return "", err
	}
	return a.store.URL(ctx, key, a.expires)
}
