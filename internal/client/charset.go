package client

import (
	"io"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// charsetDecoder returns an *encoding.Decoder for the given charset,
// or nil if no transcoding is needed.
func charsetDecoder(charset string) *encoding.Decoder {
	if charset == "" {
		return nil
	}
	lower := strings.ToLower(charset)
	if lower == "utf-8" || lower == "utf8" || lower == "us-ascii" || lower == "ascii" {
		return nil
	}
	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil || enc == nil {
		return nil
	}
	return enc.NewDecoder()
}

// BodyReader wraps the response body with a decoder that transcodes the
// declared charset to UTF-8. Returns the body unchanged for UTF-8 and
// unknown charsets.
func BodyReader(resp *http.Response) io.Reader {
	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return resp.Body
	}
	if dec := charsetDecoder(params["charset"]); dec != nil {
		return dec.Reader(resp.Body)
	}
	return resp.Body
}
