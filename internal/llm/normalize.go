package llm

import (
	"encoding/json"
	"strings"
)

// emailEnvelope is the JSON shape some models wrap their answer in.
type emailEnvelope struct {
	Email   string `json:"email"`
	Content string `json:"content"`
}

// NormalizeEmail turns raw model output into plain email text. It removes
// markdown code fences and unwraps a {"email": "..."} envelope.
func NormalizeEmail(raw string) string {
	text := strings.TrimSpace(stripCodeFences(raw))
	if !strings.HasPrefix(text, "{") {
		return text
	}

	block := extractJSONBlock(text)
	if block == "" {
		return text
	}
	var env emailEnvelope
	if err := json.Unmarshal([]byte(block), &env); err != nil {
		return text
	}
	if body := strings.TrimSpace(env.Email); body != "" {
		return body
	}
	if body := strings.TrimSpace(env.Content); body != "" {
		return body
	}
	return text
}

// stripCodeFences removes markdown fence lines (```text ... ```), keeping
// their contents.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	result := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// extractJSONBlock finds the first balanced { ... } block in the text.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
