package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "  Subject: Hi\n\nBody  \n", "Subject: Hi\n\nBody"},
		{"fenced", "```\nSubject: Hi\n\nBody\n```", "Subject: Hi\n\nBody"},
		{"fenced with language", "```text\nSubject: Hi\n```\n", "Subject: Hi"},
		{"json envelope", `{"email": "Subject: Hi\n\nBody"}`, "Subject: Hi\n\nBody"},
		{"fenced json envelope", "```json\n{\"email\": \"Subject: X\"}\n```", "Subject: X"},
		{"content key", `{"content": "Subject: C"}`, "Subject: C"},
		{"unrelated json kept", `{"foo": "bar"}`, `{"foo": "bar"}`},
		{"broken json kept", `{"email": `, `{"email":`},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.raw))
		})
	}
}

func TestExtractJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":"}"}`, extractJSONBlock(`noise {"a":"}"} tail`))
	assert.Equal(t, `{"a":{"b":1}}`, extractJSONBlock(`{"a":{"b":1}}`))
	assert.Empty(t, extractJSONBlock(`{"a":`))
	assert.Empty(t, extractJSONBlock(`none`))
}
