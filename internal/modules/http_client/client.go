package http_client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type HttpClient struct {
	HttpClient *http.Client
}

type RequestOption func(options *RequestOptions)

type RequestOptions struct {
	body     any
	form     url.Values
	header   http.Header
	username string
	password string
	basic    bool
}

// WithBody sets the request body. An io.Reader is sent as is, anything else is JSON encoded.
func WithBody(body any) RequestOption {
	return func(c *RequestOptions) {
		c.body = body
	}
}

// WithForm sends values url-encoded and sets the matching Content-Type.
func WithForm(values url.Values) RequestOption {
	return func(c *RequestOptions) {
		c.form = values
	}
}

func WithHeader(key, value string) RequestOption {
	return func(c *RequestOptions) {
		c.header.Set(key, value)
	}
}

func WithBasicAuth(username, password string) RequestOption {
	return func(c *RequestOptions) {
		c.username = username
		c.password = password
		c.basic = true
	}
}

func New(timeout time.Duration) *HttpClient {
	return &HttpClient{
		HttpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HttpClient) NewRequest(ctx context.Context, method string, url string, option ...RequestOption) (*http.Request, error) {
	options := &RequestOptions{header: http.Header{}}
	for _, opt := range option {
		opt(options)
	}
	var body io.Reader
	switch {
	case options.form != nil:
		body = strings.NewReader(options.form.Encode())
		options.header.Set("Content-Type", "application/x-www-form-urlencoded")
	case options.body != nil:
		switch v := options.body.(type) {
		case io.Reader:
			body = v
		default:
			data, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			body = bytes.NewBuffer(data)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header = options.header
	if options.basic {
		req.SetBasicAuth(options.username, options.password)
	}
	return req, nil
}

func (c *HttpClient) Do(req *http.Request) (*http.Response, error) {
	return c.HttpClient.Do(req)
}
