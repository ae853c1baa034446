package fallback

import "strings"

// letter collects paragraphs and renders them with exactly one blank line
// between each. Empty paragraphs are dropped.
type letter struct {
	subject    string
	paragraphs []string
}

func newLetter(subject string) *letter {
	return &letter{subject: strings.Join(strings.Fields(subject), " ")}
}

// add appends the non-empty parts joined by spaces as one paragraph.
func (l *letter) add(parts ...string) {
	l.push(joinNonEmpty(parts, " "))
}

// block appends the non-empty lines as one paragraph.
func (l *letter) block(lines ...string) {
	l.push(joinNonEmpty(lines, "\n"))
}

func (l *letter) push(p string) {
	if p = tidy(p); p != "" {
		l.paragraphs = append(l.paragraphs, p)
	}
}

func (l *letter) String() string {
	return "Subject: " + l.subject + "\n\n" + strings.Join(l.paragraphs, "\n\n")
}

func joinNonEmpty(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// tidy strips trailing spaces from every line and collapses runs of blank
// lines inside user-supplied text.
func tidy(p string) string {
	lines := strings.Split(p, "\n")
	out := lines[:0]
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
