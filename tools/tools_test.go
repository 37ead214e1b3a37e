package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullURL(t *testing.T) {
	require.Equal(t, "http://example.com/wp-json/wp/v2/posts", FullURL("http://example.com/", "/wp-json/wp/v2/posts"))
	require.Equal(t, "http://example.com/wp-json/wp/v2/posts", FullURL("http://example.com", "/wp-json/wp/v2/posts"))
	require.Equal(t, "http://example.com/wp-json/wp/v2/posts", FullURL("http://example.com///", "wp-json/wp/v2/posts"))
	require.Equal(t, "http://example.com", FullURL("http://example.com/", ""))
}

func TestGetOnlineImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="cat.png"`)
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	b, name, err := GetOnlineImage(context.Background(), srv.Client(), srv.URL+"/cat")
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(b))
	require.Equal(t, "cat.png", name)

	_, _, err = GetOnlineImage(context.Background(), srv.Client(), srv.URL+"/missing")
	require.Error(t, err)
}

func TestIsHTTPURL(t *testing.T) {
	require.True(t, IsHTTPURL("https://example.com/a.png"))
	require.True(t, IsHTTPURL("HTTP://example.com/a.png"))
	require.False(t, IsHTTPURL("/tmp/a.png"))
	require.False(t, IsHTTPURL("ftp://example.com/a.png"))
}
