package llm

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(zerolog.New(&buf))

	obs.OnCallComplete(CallEvent{Provider: "openai", Model: "gpt-4o", LatencyMs: 12, Attempts: 2, Success: false, ErrorCode: "timeout"})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"provider":"openai"`)
	assert.Contains(t, out, `"latency_ms":12`)
	assert.Contains(t, out, `"status":"err:timeout"`)
	assert.Contains(t, out, `"message":"llm_call"`)
}
