package fallback

import "strings"

// phraseTable maps lower-cased option values to pre-written phrases.
type phraseTable struct {
	phrases  map[string]string
	fallback string
}

func (t phraseTable) lookup(value string) (string, bool) {
	p, ok := t.phrases[strings.ToLower(strings.TrimSpace(value))]
	return p, ok
}

func (t phraseTable) pick(value string) string {
	if p, ok := t.lookup(value); ok {
		return p
	}
	return t.fallback
}

type keywordPhrase struct {
	keyword string
	phrase  string
}

// keywordTable picks the phrase of the first keyword contained in the value.
// Order matters.
type keywordTable struct {
	entries  []keywordPhrase
	fallback string
}

func (t keywordTable) pick(value string) string {
	v := strings.ToLower(value)
	for _, e := range t.entries {
		if strings.Contains(v, e.keyword) {
			return e.phrase
		}
	}
	return t.fallback
}
