package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Client talks to an OpenAI-compatible chat-completions endpoint. Both the
// quote generator and the land analyzer go through it; they differ only in
// base URL, key and model.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewClient creates a completion client for one upstream provider.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Options tune a single completion call.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Complete sends one system+user prompt pair and returns the raw assistant
// reply. A single attempt, no retries: the caller surfaces every failure to
// the UI for resubmission.
func (c *Client) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	if c.apiKey == "" {
		// Fail before issuing any network request.
		return "", ErrMissingAPIKey
	}

	body, _ := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    []message{{Role: "system", Content: system}, {Role: "user", Content: user}},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return "", ErrRateLimited
		case http.StatusPaymentRequired:
			return "", ErrPaymentRequired
		default:
			return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
		}
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrMalformedReply)
	}
	return out.Choices[0].Message.Content, nil
}

var codeFence = regexp.MustCompile("```(?:json)?\n?")

// StripCodeFences removes Markdown code-fence wrapping that models sometimes
// add despite being told not to.
func StripCodeFences(s string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(s, ""))
}

// DecodeJSON parses a model reply into v, stripping code fences first.
// Parse failures are reported as ErrMalformedReply, distinct from transport
// errors.
func DecodeJSON(content string, v interface{}) error {
	if err := json.Unmarshal([]byte(StripCodeFences(content)), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return nil
}
