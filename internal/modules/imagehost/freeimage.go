package imagehost

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/wp-hub/internal/modules/http_client"
	"github.com/reusedev/wp-hub/internal/modules/logs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type uploadResponse struct {
	Image *struct {
		URL string `json:"url"`
	} `json:"image"`
}

// FreeImage uploads through a freeimage.host style API (form fields key, source, action).
type FreeImage struct {
	endpoint string
	client   *http_client.HttpClient
}

func NewFreeImage(endpoint string, timeout time.Duration) *FreeImage {
	return &FreeImage{endpoint: endpoint, client: http_client.New(timeout)}
}

func (f *FreeImage) Upload(ctx context.Context, reference, apiKey string) (string, bool) {
	imageURL, err := f.upload(ctx, reference, apiKey)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("reference", reference).Msg("imagehost-FreeImage-Upload")
		return "", false
	}
	return imageURL, true
}

func (f *FreeImage) upload(ctx context.Context, reference, apiKey string) (string, error) {
	req, err := f.client.NewRequest(
		ctx,
		http.MethodPost,
		f.endpoint,
		http_client.WithForm(url.Values{
			"key":    {apiKey},
			"source": {reference},
			"action": {"upload"},
		}),
	)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("status code: %d", resp.StatusCode)
	}
	var ret uploadResponse
	if err = json.Unmarshal(body, &ret); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if ret.Image == nil || strings.TrimSpace(ret.Image.URL) == "" {
		return "", fmt.Errorf("upload response has no image.url")
	}
	return ret.Image.URL, nil
}
