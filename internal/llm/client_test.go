package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ollamaConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOllama
	cfg.Ollama.Endpoint = endpoint
	return cfg
}

func TestOllamaClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, "write an email", req.Prompt)
		assert.InDelta(t, 0.6, req.Options.Temperature, 1e-9)
		assert.Equal(t, 4000, req.Options.NumPredict)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "Subject: Hi\n\nHello"})
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "write an email"})

	require.NoError(t, err)
	assert.Equal(t, "Subject: Hi\n\nHello", resp.Text)
	assert.Equal(t, ProviderOllama, resp.Provider)
	assert.Equal(t, "llama3.2", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOpenAIClient_Generate_WireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req openAIRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "prompt text", req.Messages[0].Content)
		assert.Equal(t, 4000, req.MaxTokens)
		assert.InDelta(t, 0.2, req.Temperature, 1e-9)

		w.Write([]byte(`{"model":"gpt-4o-2024","choices":[{"message":{"role":"assistant","content":"Subject: Yes"}}]}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "sk-test"
	cfg.OpenAI.BaseURL = srv.URL + "/"

	temp := 0.2
	client := NewOpenAIClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "prompt text", Model: "gpt-4o", Temperature: &temp})

	require.NoError(t, err)
	assert.Equal(t, "Subject: Yes", resp.Text)
	assert.Equal(t, "gpt-4o-2024", resp.Model)
	assert.Equal(t, ProviderOpenAI, client.Name())
}

func TestAnthropicClient_Generate_WireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "ak-test", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-3-5-sonnet-20241022", req.Model)
		assert.Equal(t, 100, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "hello", req.Messages[0].Content)

		w.Write([]byte(`{"content":[{"type":"text","text":"Subject: Done"}]}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Anthropic.APIKey = "ak-test"
	cfg.Anthropic.BaseURL = srv.URL

	maxTokens := 100
	client := NewAnthropicClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "hello", MaxTokens: &maxTokens})

	require.NoError(t, err)
	assert.Equal(t, "Subject: Done", resp.Text)
	assert.Equal(t, "claude-3-5-sonnet-20241022", resp.Model, "falls back to the requested model")
}

func TestClient_Generate_NotConfigured(t *testing.T) {
	client := NewOpenAIClient(DefaultConfig(), NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})

	assert.ErrorIs(t, err, ErrProviderNotConfigured)
	assert.False(t, client.Available(context.Background()))
}

func TestClient_Generate_EmptyResponse(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "k"
	cfg.OpenAI.BaseURL = srv.URL

	_, err := NewOpenAIClient(cfg, NoopObserver{}).Generate(context.Background(), GenerateRequest{Prompt: "x"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestOllamaClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := ollamaConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestOllamaClient_Generate_Unavailable(t *testing.T) {
	cfg := ollamaConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 1000

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestOllamaClient_Generate_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
			return
		}
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	cfg := ollamaConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewOllamaClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, attempts)
}

func TestOllamaClient_Generate_RetryAfterTimeout(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		if n == 1 {
			time.Sleep(120 * time.Millisecond)
		}
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	cfg := ollamaConfig(srv.URL)
	cfg.MaxRetries = 1
	cfg.TimeoutMs = 50

	client := NewOllamaClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_Generate_ClientErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad key"))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "wrong"
	cfg.OpenAI.BaseURL = srv.URL
	cfg.MaxRetries = 3

	_, err := NewOpenAIClient(cfg, NoopObserver{}).Generate(context.Background(), GenerateRequest{Prompt: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, "http_401", ErrorCode(err))
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_Generate_CancelledContextStopsRetries(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := ollamaConfig(srv.URL)
	cfg.MaxRetries = 5

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOllamaClient(cfg, NoopObserver{}).Generate(ctx, GenerateRequest{Prompt: "x"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.LessOrEqual(t, attempts.Load(), int32(1))
}

func TestOllamaClient_Available_True(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))
}

func TestOllamaClient_Available_False(t *testing.T) {
	client := NewOllamaClient(ollamaConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.False(t, client.Available(context.Background()))
}

func TestOpenAIClient_AvailableWhenKeySet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "k"
	assert.True(t, NewOpenAIClient(cfg, nil).Available(context.Background()))
}

func TestOllamaClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}

	client := NewOllamaClient(ollamaConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, captured.Provider)
	assert.Equal(t, "llama3.2", captured.Model)
	assert.Equal(t, 1, captured.Attempts)
	assert.True(t, captured.Success)
	assert.GreaterOrEqual(t, captured.LatencyMs, int64(0))
}

func TestOllamaClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := ollamaConfig(srv.URL)
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 50

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	client := NewOllamaClient(cfg, obs)

	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "timeout", captured.ErrorCode)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient("gemini", DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(e CallEvent) { o.fn(e) }

func TestTruncate_KeepsRuneBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"ascii", "abcdef", 3, "abc..."},
		{"cut inside two-byte rune", "aéé", 2, "a..."},
		{"cut after rune", "aéé", 3, "aé..."},
		{"cut inside four-byte rune", "😀😀", 6, "😀..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestOpenAIClient_StatusErrorBodyIsValidUTF8(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		// 'x' shifts every two-byte rune so byte 512 lands mid-rune.
		w.Write([]byte("x" + strings.Repeat("é", 400)))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "k"
	cfg.OpenAI.BaseURL = srv.URL

	_, err := NewOpenAIClient(cfg, NoopObserver{}).Generate(context.Background(), GenerateRequest{Prompt: "x"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.True(t, utf8.ValidString(statusErr.Body))
	assert.True(t, strings.HasSuffix(statusErr.Body, "..."))
}
