package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/ryanfowler/huh/internal/core"
)

func TestNewRequestHeaders(t *testing.T) {
	u, err := url.Parse("https://example.com/v1/models")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	c := NewClient(ClientConfig{Timeout: time.Minute})
	req, err := c.NewRequest(context.Background(), RequestConfig{
		Method: http.MethodPost,
		URL:    u,
		Headers: []core.KeyVal[string]{
			{Key: "x-goog-api-key", Val: "secret"},
		},
		QueryParams: []core.KeyVal[string]{
			{Key: "alt", Val: "json"},
		},
		Body: strings.NewReader("{}"),
		JSON: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := req.Header.Get("x-goog-api-key"); got != "secret" {
		t.Fatalf("unexpected api key header %q", got)
	}
	if got := req.Header.Get("Accept-Encoding"); got != "gzip" {
		t.Fatalf("unexpected accept-encoding %q", got)
	}
	if got := req.URL.Query().Get("alt"); got != "json" {
		t.Fatalf("unexpected query params %q", req.URL.RawQuery)
	}
}

func TestDoDecodesGzip(t *testing.T) {
	const body = `{"ok":true}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept-Encoding") != "gzip" {
			t.Errorf("missing accept-encoding header")
		}
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		io.WriteString(gz, body)
		gz.Close()
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	c := NewClient(ClientConfig{Timeout: time.Minute})
	req, err := c.NewRequest(context.Background(), RequestConfig{Method: http.MethodGet, URL: u})
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if string(buf) != body {
		t.Fatalf("expected %q, got %q", body, buf)
	}
}

func TestBodyReaderTranscodes(t *testing.T) {
	// "héllo" in ISO-8859-1.
	raw := []byte{'h', 0xe9, 'l', 'l', 'o'}
	resp := &http.Response{
		Header: http.Header{"Content-Type": []string{"text/plain; charset=ISO-8859-1"}},
		Body:   io.NopCloser(strings.NewReader(string(raw))),
	}

	buf, err := io.ReadAll(BodyReader(resp))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if string(buf) != "héllo" {
		t.Fatalf("expected %q, got %q", "héllo", buf)
	}
}

func TestBodyReaderUTF8Passthrough(t *testing.T) {
	resp := &http.Response{
		Header: http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
		Body:   io.NopCloser(strings.NewReader("{}")),
	}
	buf, err := io.ReadAll(BodyReader(resp))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if string(buf) != "{}" {
		t.Fatalf("expected %q, got %q", "{}", buf)
	}
}
