package http_client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRequestJSONBody(t *testing.T) {
	c := New(time.Second)
	req, err := c.NewRequest(context.Background(), http.MethodPost, "http://example.com/x",
		WithHeader("Content-Type", "application/json"),
		WithBasicAuth("alice", "secret"),
		WithBody(map[string]string{"title": "t"}),
	)
	require.NoError(t, err)
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"t"}`, string(body))
	require.Equal(t, "application/json", req.Header.Get("Content-Type"))
	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	require.Equal(t, "alice", user)
	require.Equal(t, "secret", pass)
}

func TestNewRequestForm(t *testing.T) {
	c := New(time.Second)
	req, err := c.NewRequest(context.Background(), http.MethodPost, "http://example.com/upload",
		WithForm(url.Values{"key": {"k"}, "action": {"upload"}}),
	)
	require.NoError(t, err)
	require.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	require.NoError(t, req.ParseForm())
	require.Equal(t, "k", req.PostForm.Get("key"))
	require.Equal(t, "upload", req.PostForm.Get("action"))
}

func TestNewClientTimeout(t *testing.T) {
	require.Equal(t, 3*time.Second, New(3*time.Second).HttpClient.Timeout)
}
