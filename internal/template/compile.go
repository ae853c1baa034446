package template

import "strings"

// CompilePrompt resolves every {name} placeholder in promptText in a single
// left-to-right pass. Known names with a non-blank value are replaced by the
// value verbatim; blank values and unknown names are removed. Substituted
// values are never re-scanned, so a value containing "{x}" stays literal.
func CompilePrompt(promptText string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(promptText))

	i := 0
	for i < len(promptText) {
		c := promptText[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}

		end, ok := placeholderEnd(promptText, i)
		if !ok {
			b.WriteByte(c)
			i++
			continue
		}

		name := promptText[i+1 : end]
		if v, found := values[name]; found && strings.TrimSpace(v) != "" {
			b.WriteString(v)
		}
		i = end + 1
	}

	return b.String()
}

// Placeholders returns the distinct placeholder names in promptText in order
// of first appearance.
func Placeholders(promptText string) []string {
	var names []string
	seen := map[string]bool{}

	i := 0
	for i < len(promptText) {
		if promptText[i] != '{' {
			i++
			continue
		}
		end, ok := placeholderEnd(promptText, i)
		if !ok {
			i++
			continue
		}
		name := promptText[i+1 : end]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i = end + 1
	}

	return names
}

// placeholderEnd returns the index of the '}' closing a placeholder opened at
// start. A placeholder body is one or more bytes other than braces and
// newlines.
func placeholderEnd(s string, start int) (int, bool) {
	for j := start + 1; j < len(s); j++ {
		switch s[j] {
		case '}':
			if j == start+1 {
				return 0, false
			}
			return j, true
		case '{', '\n':
			return 0, false
		}
	}
	return 0, false
}
