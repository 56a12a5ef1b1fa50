package extractor

import (
	"regexp"
	"strings"

	"forkful/internal/domain"
)

var (
	firstIntRe  = regexp.MustCompile(`\d+`)
	numberingRe = regexp.MustCompile(`(?m)(?:^|\s)\d+[.)]\s+`)
	newlineRe   = regexp.MustCompile(`\r?\n+`)
	spaceRe     = regexp.MustCompile(`\s+`)
)

func norm(s string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// stringValue extracts a string from a JSON-decoded value that may be a plain
// string, an array of strings, or an array/object carrying a "url" or "text"
// key. Returns "" when nothing usable is found.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return norm(t)
	case []any:
		for _, item := range t {
			if s := stringValue(item); s != "" {
				return s
			}
		}
	case map[string]any:
		for _, key := range []string{"url", "contentUrl", "text", "name"} {
			if s, ok := t[key].(string); ok && norm(s) != "" {
				return norm(s)
			}
		}
	}
	return ""
}

// firstInt pulls the first embedded integer out of a string, e.g. "Serves 4-6"
// yields 4.
func firstInt(s string) (int, bool) {
	m := firstIntRe.FindString(s)
	if m == "" {
		return 0, false
	}
	n := 0
	for _, c := range m {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// splitInstructionText breaks a single instruction blob into steps, first on
// newlines, then on "1. / 2) ..." numbering when the blob is one line.
func splitInstructionText(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	lines := newlineRe.Split(s, -1)
	if len(lines) == 1 && numberingRe.MatchString(s) {
		lines = numberingRe.Split(s, -1)
	}

	var steps []string
	for _, line := range lines {
		line = norm(line)
		if line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

// presence-driven confidence: explicitly present fields are trusted up to the
// source's ceiling, absent fields are low.
func confidenceFor(present bool, ceiling domain.Confidence) domain.Confidence {
	if present {
		return ceiling
	}
	return domain.ConfidenceLow
}

func wrapRawIngredients(lines []string) []domain.RawIngredient {
	out := make([]domain.RawIngredient, 0, len(lines))
	for _, line := range lines {
		line = norm(line)
		if line == "" {
			continue
		}
		out = append(out, domain.RawIngredient{Raw: line})
	}
	return out
}
