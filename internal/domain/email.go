package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	subjectPrefix  = "Subject:"
	wordsPerMinute = 200
)

// GeneratedEmail is one generation result, either from a provider or from
// the local fallback.
type GeneratedEmail struct {
	ID             string
	TemplateID     string
	Content        string
	Subject        string
	Variables      map[string]string
	Source         GenerationSource
	Provider       string
	Model          string
	FallbackReason string
	CreatedAt      time.Time
}

// Body returns the email text below the subject line.
func (e *GeneratedEmail) Body() string {
	_, body := SplitEmail(e.Content)
	return body
}

// SplitEmail separates the "Subject:" line from the body. Without a subject
// line the whole trimmed content is the body.
func SplitEmail(content string) (subject, body string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, subjectPrefix) {
			continue
		}
		subject = strings.TrimSpace(strings.TrimPrefix(trimmed, subjectPrefix))
		rest := strings.Join(lines[i+1:], "\n")
		return subject, strings.TrimSpace(rest)
	}
	return "", strings.TrimSpace(content)
}

// EmailStats summarizes an email for display.
type EmailStats struct {
	Words          int
	Characters     int
	ReadingMinutes int
}

// ComputeStats counts words and characters and estimates reading time at
// 200 words per minute.
func ComputeStats(content string) EmailStats {
	words := len(strings.Fields(content))
	stats := EmailStats{
		Words:      words,
		Characters: utf8.RuneCountInString(content),
	}
	if words > 0 {
		stats.ReadingMinutes = (words + wordsPerMinute - 1) / wordsPerMinute
	}
	return stats
}
