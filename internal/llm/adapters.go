package llm

import (
	"context"
	"encoding/json"
	"net/http"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIAdapter speaks POST /v1/chat/completions.
type openAIAdapter struct {
	cfg OpenAIConfig
}

type openAIRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type openAIResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (a openAIAdapter) name() string     { return ProviderOpenAI }
func (a openAIAdapter) configured() bool { return a.cfg.APIKey != "" }

func (a openAIAdapter) newRequest(ctx context.Context, call wireCall) (*http.Request, error) {
	req, err := postJSON(ctx, joinURL(a.cfg.BaseURL, "/v1/chat/completions"), openAIRequest{
		Model:       call.Model,
		Messages:    []chatMessage{{Role: "user", Content: call.Prompt}},
		MaxTokens:   call.MaxTokens,
		Temperature: call.Temperature,
	})
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	return req, nil
}

func (a openAIAdapter) decode(body []byte) (string, string, error) {
	var resp openAIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", "", err
	}
	if len(resp.Choices) == 0 {
		return "", resp.Model, nil
	}
	return resp.Choices[0].Message.Content, resp.Model, nil
}

func (a openAIAdapter) probe(context.Context) (*http.Request, error) { return nil, nil }

// anthropicAdapter speaks POST /v1/messages.
type anthropicAdapter struct {
	cfg AnthropicConfig
}

type anthropicRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (a anthropicAdapter) name() string     { return ProviderAnthropic }
func (a anthropicAdapter) configured() bool { return a.cfg.APIKey != "" }

func (a anthropicAdapter) newRequest(ctx context.Context, call wireCall) (*http.Request, error) {
	req, err := postJSON(ctx, joinURL(a.cfg.BaseURL, "/v1/messages"), anthropicRequest{
		Model:       call.Model,
		MaxTokens:   call.MaxTokens,
		Temperature: call.Temperature,
		Messages:    []chatMessage{{Role: "user", Content: call.Prompt}},
	})
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", a.cfg.APIKey)
	req.Header.Set("anthropic-version", a.cfg.Version)
	return req, nil
}

func (a anthropicAdapter) decode(body []byte) (string, string, error) {
	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", "", err
	}
	if len(resp.Content) == 0 {
		return "", resp.Model, nil
	}
	return resp.Content[0].Text, resp.Model, nil
}

func (a anthropicAdapter) probe(context.Context) (*http.Request, error) { return nil, nil }

// ollamaAdapter speaks POST /api/generate without streaming.
type ollamaAdapter struct {
	cfg OllamaConfig
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (a ollamaAdapter) name() string     { return ProviderOllama }
func (a ollamaAdapter) configured() bool { return a.cfg.Endpoint != "" }

func (a ollamaAdapter) newRequest(ctx context.Context, call wireCall) (*http.Request, error) {
	return postJSON(ctx, joinURL(a.cfg.Endpoint, "/api/generate"), ollamaRequest{
		Model:  call.Model,
		Prompt: call.Prompt,
		Options: ollamaOptions{
			Temperature: call.Temperature,
			NumPredict:  call.MaxTokens,
		},
	})
}

func (a ollamaAdapter) decode(body []byte) (string, string, error) {
	var resp ollamaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", "", err
	}
	return resp.Response, resp.Model, nil
}

func (a ollamaAdapter) probe(ctx context.Context) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, joinURL(a.cfg.Endpoint, "/api/tags"), nil)
}
