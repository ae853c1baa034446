package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// GenerateRequest holds the parameters for a generation call.
type GenerateRequest struct {
	Prompt      string
	Model       string   // empty uses the provider default
	Temperature *float64 // nil uses the configured default
	MaxTokens   *int     // nil uses the configured default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Provider  string
	Model     string
	LatencyMs int64
}

// Client provides access to one text-generation provider.
type Client interface {
	Name() string

	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the provider can currently be used.
	Available(ctx context.Context) bool
}

// wireCall is one provider-specific request.
type wireCall struct {
	Model       string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// adapter translates between wireCall and a provider's HTTP API.
type adapter interface {
	name() string
	configured() bool
	newRequest(ctx context.Context, call wireCall) (*http.Request, error)
	decode(body []byte) (text, model string, err error)
	// probe returns a request whose 200 answer means the provider is up, or
	// nil when being configured is enough.
	probe(ctx context.Context) (*http.Request, error)
}

// httpClient implements Client for any adapter.
type httpClient struct {
	cfg      Config
	wire     adapter
	http     *http.Client
	observer Observer
}

func newHTTPClient(cfg Config, wire adapter, observer Observer) *httpClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg:  cfg,
		wire: wire,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// NewOpenAIClient creates a Client for the OpenAI chat completions API.
func NewOpenAIClient(cfg Config, observer Observer) Client {
	return newHTTPClient(cfg, openAIAdapter{cfg: cfg.OpenAI}, observer)
}

// NewAnthropicClient creates a Client for the Anthropic messages API.
func NewAnthropicClient(cfg Config, observer Observer) Client {
	return newHTTPClient(cfg, anthropicAdapter{cfg: cfg.Anthropic}, observer)
}

// NewOllamaClient creates a Client that talks to a local Ollama instance.
func NewOllamaClient(cfg Config, observer Observer) Client {
	return newHTTPClient(cfg, ollamaAdapter{cfg: cfg.Ollama}, observer)
}

// NewClient creates the Client for a provider name.
func NewClient(provider string, cfg Config, observer Observer) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(cfg, observer), nil
	case ProviderAnthropic:
		return NewAnthropicClient(cfg, observer), nil
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}

func (c *httpClient) Name() string { return c.wire.name() }

func (c *httpClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	call := wireCall{
		Model:       req.Model,
		Prompt:      req.Prompt,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}
	if call.Model == "" {
		call.Model = c.cfg.DefaultModel(c.wire.name())
	}
	if req.Temperature != nil {
		call.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		call.MaxTokens = *req.MaxTokens
	}

	if !c.wire.configured() {
		c.complete(call.Model, start, 0, ErrProviderNotConfigured)
		return nil, fmt.Errorf("%s: %w", c.wire.name(), ErrProviderNotConfigured)
	}

	var lastErr error
	attempts := 0
	for i := 0; i < 1+c.cfg.MaxRetries; i++ {
		attempts++
		text, model, err := c.attempt(ctx, call)
		if err == nil {
			latency := c.complete(model, start, attempts, nil)
			return &GenerateResponse{
				Text:      text,
				Provider:  c.wire.name(),
				Model:     model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry once the caller has given up
		if ctx.Err() != nil {
			break
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.retryable() {
			break
		}
	}

	var err error
	switch {
	case errors.Is(lastErr, context.DeadlineExceeded) || ctx.Err() != nil:
		err = ErrTimeout
	case isConnectionError(lastErr):
		err = fmt.Errorf("%w: %v", ErrProviderUnavailable, lastErr)
	case errors.Is(lastErr, ErrEmptyResponse):
		err = lastErr
	default:
		err = fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
	}
	c.complete(call.Model, start, attempts, err)
	return nil, err
}

func (c *httpClient) complete(model string, start time.Time, attempts int, err error) int64 {
	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Provider:  c.wire.name(),
		Model:     model,
		LatencyMs: latency,
		Attempts:  attempts,
		Success:   err == nil,
		ErrorCode: ErrorCode(err),
	})
	return latency
}

// attempt makes one request bounded by the configured timeout.
func (c *httpClient) attempt(ctx context.Context, call wireCall) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	httpReq, err := c.wire.newRequest(ctx, call)
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return "", "", &StatusError{
			Provider:   c.wire.name(),
			StatusCode: httpResp.StatusCode,
			Body:       truncate(string(respBody), 512),
		}
	}

	text, model, err := c.wire.decode(respBody)
	if err != nil {
		return "", "", fmt.Errorf("decoding response: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", "", ErrEmptyResponse
	}
	if model == "" {
		model = call.Model
	}
	return text, model, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	if !c.wire.configured() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := c.wire.probe(ctx)
	if err != nil {
		return false
	}
	if req == nil {
		return true
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func postJSON(ctx context.Context, url string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
