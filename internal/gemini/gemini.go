// Package gemini implements the generateContent API used to analyze shell
// commands and generate file contents.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ryanfowler/huh/internal/client"
	"github.com/ryanfowler/huh/internal/core"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Models lists the selectable model IDs, recommended first.
var Models = []core.KeyVal[string]{
	{Key: "gemini-2.0-flash", Val: "fast, balanced performance (recommended)"},
	{Key: "gemini-1.5-pro", Val: "advanced reasoning and complex tasks"},
	{Key: "gemini-1.5-flash", Val: "fast responses, good for quick queries"},
	{Key: "gemini-1.5-flash-8b", Val: "lightweight, very fast responses"},
	{Key: "gemini-2.0-flash-exp", Val: "latest features, may be unstable"},
	{Key: "gemini-2.5-flash-lite-preview-06-17", Val: "optimized for efficiency"},
}

// IsKnownModel reports whether id is one of the selectable models.
func IsKnownModel(id string) bool {
	for _, m := range Models {
		if m.Key == id {
			return true
		}
	}
	return false
}

// GenerationConfig holds the sampling parameters for one request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	Status int
	Body   string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", err.Status, err.Body)
}

func (err *APIError) PrintTo(p *core.Printer) {
	p.WriteString(err.Error())
}

// EmptyResponseError indicates a 2xx response with no candidate text.
type EmptyResponseError struct{}

func (EmptyResponseError) Error() string {
	return "no response from model"
}

type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *client.Client
}

type Client struct {
	http    *client.Client
	baseURL string
	apiKey  string
	model   string
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		http:    cfg.HTTP,
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		model:   model,
	}
}

// Model returns the model ID requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt to the model and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string, genCfg GenerationConfig) (string, error) {
	u, err := url.Parse(fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model))
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: genCfg,
	})
	if err != nil {
		return "", err
	}

	req, err := c.http.NewRequest(ctx, client.RequestConfig{
		Method: http.MethodPost,
		URL:    u,
		Headers: []core.KeyVal[string]{
			{Key: "x-goog-api-key", Val: c.apiKey},
		},
		Body: bytes.NewReader(body),
		JSON: true,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		buf, _ := io.ReadAll(io.LimitReader(client.BodyReader(resp), 4096))
		return "", &APIError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(buf))}
	}

	var out generateResponse
	if err = json.NewDecoder(client.BodyReader(resp)).Decode(&out); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", EmptyResponseError{}
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", EmptyResponseError{}
	}
	return text, nil
}
