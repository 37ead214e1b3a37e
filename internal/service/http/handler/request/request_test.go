package request

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeIntegrateImagesObjectAndList(t *testing.T) {
	obj := []byte(`{"Content":"<p>x</p>","featured image":"f","Image 1":"1","Api_Key":"k"}`)
	fromObject, err := DecodeIntegrateImages(obj)
	require.NoError(t, err)
	fromList, err := DecodeIntegrateImages([]byte(" [" + string(obj) + ", {\"Content\":\"ignored\"}]"))
	require.NoError(t, err)
	require.Equal(t, fromObject, fromList)
	require.Equal(t, "f", fromObject.FeaturedImage)
	require.Equal(t, "", fromObject.Image2)
	require.NoError(t, fromObject.Valid())
}

func TestDecodeIntegrateImagesInvalid(t *testing.T) {
	for _, body := range []string{`{"Content":`, ``, `[1,2]`, `"text"`, `{"Content":5}`} {
		_, err := DecodeIntegrateImages([]byte(body))
		require.ErrorIs(t, err, ErrInvalidJSON, body)
	}
}

func TestDecodeIntegrateImagesEmptyList(t *testing.T) {
	r, err := DecodeIntegrateImages([]byte(`[]`))
	require.NoError(t, err)
	require.ErrorIs(t, r.Valid(), ErrMissingFields)
}

func TestIntegrateImagesValid(t *testing.T) {
	base := IntegrateImages{Content: "c", FeaturedImage: "f", Image1: "1", APIKey: "k"}
	require.NoError(t, base.Valid())

	missing := base
	missing.FeaturedImage = ""
	require.ErrorIs(t, missing.Valid(), ErrMissingFields)

	missing = base
	missing.APIKey = ""
	require.ErrorIs(t, missing.Valid(), ErrMissingFields)

	missing = base
	missing.Image1 = ""
	require.ErrorIs(t, missing.Valid(), ErrMissingFields)
}

func TestPostToPostRequest(t *testing.T) {
	title, content, url, user, key := "T", "C", "http://example.com/", "u", "k"
	p := Post{Title: &title, Content: &content, URL: &url, Username: &user, APIKey: &key}
	r := p.ToPostRequest()
	require.Empty(t, r.Status)
	require.Equal(t, "http://example.com/", r.SiteURL)
	require.Equal(t, "k", r.APIKey)
}
