package extractor

import (
	"regexp"
	"strings"
)

// maxPromptChars caps sanitized page text to respect model context limits.
const maxPromptChars = 50000

var (
	scriptRe   = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRe    = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	noscriptRe = regexp.MustCompile(`(?is)<noscript\b[^>]*>.*?</noscript>`)
	commentRe  = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagRe      = regexp.MustCompile(`<[^>]+>`)
)

// SanitizeHTML reduces a page to plain text suitable for a model prompt:
// script/style/noscript blocks and comments removed, tags collapsed to
// spaces, whitespace collapsed, hard-capped at maxPromptChars.
func SanitizeHTML(html string) string {
	s := scriptRe.ReplaceAllString(html, " ")
	s = styleRe.ReplaceAllString(s, " ")
	s = noscriptRe.ReplaceAllString(s, " ")
	s = commentRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if len(s) > maxPromptChars {
		s = s[:maxPromptChars]
	}
	return s
}

var paywallPhrases = []string{
	"subscribe to continue reading",
	"subscription required",
	"to continue reading, subscribe",
	"this article is for subscribers",
	"create a free account to continue",
	"sign in to read the full article",
	"unlock this recipe",
	"become a member to view",
}

// DetectPaywall reports whether the page matches known paywall phrases.
// A paywalled page is not retryable without a different source.
func DetectPaywall(html string) bool {
	lower := strings.ToLower(html)
	for _, phrase := range paywallPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
