package wordpress

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/wp-hub/internal/consts"
	"github.com/reusedev/wp-hub/internal/modules/http_client"
	"github.com/reusedev/wp-hub/internal/modules/logs"
	"github.com/reusedev/wp-hub/tools"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type PostRequest struct {
	Title    string
	Content  string
	SiteURL  string
	Status   string
	Username string
	APIKey   string
}

type postPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

type Client struct {
	client *http_client.HttpClient
}

func NewClient(timeout time.Duration) *Client {
	return &Client{client: http_client.New(timeout)}
}

// PostsURL is the REST collection endpoint for posts on siteURL.
func PostsURL(siteURL string) string {
	return tools.FullURL(siteURL, consts.WordPressPostsPath)
}

// CreatePost sends one authenticated POST and returns the decoded remote JSON body.
func (c *Client) CreatePost(ctx context.Context, post PostRequest) (any, error) {
	if post.Status == "" {
		post.Status = consts.PostStatusDraft.String()
	}
	endpoint := PostsURL(post.SiteURL)
	req, err := c.client.NewRequest(
		ctx,
		http.MethodPost,
		endpoint,
		http_client.WithHeader("Accept", "application/json"),
		http_client.WithHeader("Content-Type", "application/json"),
		http_client.WithBasicAuth(post.Username, post.APIKey),
		http_client.WithBody(postPayload{Title: post.Title, Content: post.Content, Status: post.Status}),
	)
	if err != nil {
		return nil, &RemoteRequestError{URL: endpoint, Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RemoteRequestError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteRequestError{URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logs.Logger.Warn().Str("url", endpoint).Int("status", resp.StatusCode).Str("body", string(body)).Msg("wordpress-CreatePost")
		return nil, &RemoteRequestError{URL: endpoint, StatusCode: resp.StatusCode}
	}
	var data any
	if err = json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode wordpress response: %w", err)
	}
	logs.Logger.Info().Str("url", endpoint).Int("status", resp.StatusCode).Msg("wordpress-CreatePost")
	return data, nil
}

func statusText(code int) string {
	kind := "Error"
	switch {
	case code >= 400 && code < 500:
		kind = "Client Error"
	case code >= 500:
		kind = "Server Error"
	}
	return kind + ": " + http.StatusText(code)
}
