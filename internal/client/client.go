// Package client provides the HTTP client used for model API calls, with
// transparent gzip decoding and charset normalization.
package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/ryanfowler/huh/internal/core"
)

type Client struct {
	c *http.Client
}

type ClientConfig struct {
	Timeout time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	return &Client{
		c: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &http.Transport{},
		},
	}
}

type RequestConfig struct {
	Method      string
	URL         *url.URL
	Headers     []core.KeyVal[string]
	QueryParams []core.KeyVal[string]
	Body        io.Reader
	JSON        bool
}

func (c *Client) NewRequest(ctx context.Context, cfg RequestConfig) (*http.Request, error) {
	q := cfg.URL.Query()
	for _, kv := range cfg.QueryParams {
		q.Add(kv.Key, kv.Val)
	}
	cfg.URL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, cfg.Method, cfg.URL.String(), cfg.Body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.UserAgent)
	if cfg.JSON {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, kv := range cfg.Headers {
		req.Header.Set(kv.Key, kv.Val)
	}

	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", "gzip")
		ctx = context.WithValue(ctx, ctxEncodingRequestedKey, true)
		req = req.WithContext(ctx)
	}

	return req, nil
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.c.Do(req)
	if err != nil {
		return nil, err
	}

	ce := resp.Header.Get("Content-Encoding")
	if encodingRequested(req) && ce == "gzip" {
		gz, err := newGZIPReader(resp.Body)
		if err != nil {
			return nil, err
		}
		resp.Body = gz
	}

	return resp, nil
}

type ctxEncodingRequestedKeyType int

const ctxEncodingRequestedKey ctxEncodingRequestedKeyType = 0

func encodingRequested(r *http.Request) bool {
	v, ok := r.Context().Value(ctxEncodingRequestedKey).(bool)
	return ok && v
}

type gzipReader struct {
	*gzip.Reader
	c io.Closer
}

func newGZIPReader(rc io.ReadCloser) (*gzipReader, error) {
	gzr, err := gzip.NewReader(rc)
	if err != nil {
		return nil, err
	}
	return &gzipReader{Reader: gzr, c: rc}, nil
}

func (r *gzipReader) Close() error {
	err := r.Reader.Close()
	err2 := r.c.Close()
	if err != nil {
		return err
	}
	return err2
}
