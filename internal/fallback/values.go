package fallback

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Values wraps the caller's variable map. Lookups trim whitespace and treat
// blank as absent.
type Values map[string]string

// Get returns the trimmed value for name, or def when it is blank.
func (v Values) Get(name, def string) string {
	if s := strings.TrimSpace(v[name]); s != "" {
		return s
	}
	return def
}

// Has reports whether name has a non-blank value.
func (v Values) Has(name string) bool {
	return strings.TrimSpace(v[name]) != ""
}

// Clause returns the value without trailing sentence punctuation, for use
// mid-sentence.
func (v Values) Clause(name, def string) string {
	if s := clause(v[name]); s != "" {
		return s
	}
	return def
}

// Sentence returns the value terminated with punctuation, or def.
func (v Values) Sentence(name, def string) string {
	if s := clause(v[name]); s != "" {
		return sentence(v[name])
	}
	return def
}

// Lower returns the trimmed, lower-cased value used as a table key.
func (v Values) Lower(name string) string {
	return strings.ToLower(strings.TrimSpace(v[name]))
}

func clause(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!? \t\n")
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
