package youtube

import (
	"regexp"
	"strings"
)

var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// URL patterns tried in order: watch, short link, shorts, embed, mobile.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:www\.)?youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:www\.)?youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:www\.)?youtube\.com/embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`m\.youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
}

var hostRe = regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?(?:youtube\.com|youtu\.be)(?:/|$)`)

// ExtractVideoID pulls the 11-character video ID out of any supported YouTube
// URL form. A trimmed input that already looks like a bare ID is returned
// verbatim. Returns "" when nothing matches.
func ExtractVideoID(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, re := range urlPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	if videoIDRe.MatchString(raw) {
		return raw
	}
	return ""
}

// IsValidVideoID reports whether id is exactly an 11-character video ID.
func IsValidVideoID(id string) bool {
	return videoIDRe.MatchString(id)
}

// IsYouTubeURL reports whether raw points at a YouTube host.
func IsYouTubeURL(raw string) bool {
	return hostRe.MatchString(strings.TrimSpace(raw))
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// ThumbnailURL builds the high-quality thumbnail URL for a video ID.
func ThumbnailURL(id string) string {
	return "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"
}

