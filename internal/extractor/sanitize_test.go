package extractor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"forkful/internal/extractor"
)

func TestSanitizeHTML_StripsMarkupAndScripts(t *testing.T) {
	html := `<html><head>
	<script>window.tracker = "evil";</script>
	<style>.ad { display: none }</style>
	</head><body>
	<!-- nav boilerplate -->
	<h1>Garlic   Butter Shrimp</h1>
	<noscript>enable javascript</noscript>
	<p>Melt the butter, then add the shrimp.</p>
	</body></html>`

	out := extractor.SanitizeHTML(html)

	assert.Contains(t, out, "Garlic Butter Shrimp")
	assert.Contains(t, out, "Melt the butter, then add the shrimp.")
	assert.NotContains(t, out, "tracker")
	assert.NotContains(t, out, "display: none")
	assert.NotContains(t, out, "enable javascript")
	assert.NotContains(t, out, "boilerplate")
	assert.NotContains(t, out, "<")
}

func TestSanitizeHTML_CapsLength(t *testing.T) {
	huge := "<p>" + strings.Repeat("shrimp scampi forever ", 10000) + "</p>"
	out := extractor.SanitizeHTML(huge)
	assert.LessOrEqual(t, len(out), 50000)
}

func TestSanitizeHTML_Empty(t *testing.T) {
	assert.Equal(t, "", extractor.SanitizeHTML(""))
	assert.Equal(t, "", extractor.SanitizeHTML("<div><span></span></div>"))
}

func TestDetectPaywall(t *testing.T) {
	assert.True(t, extractor.DetectPaywall("To keep reading, subscribe to continue reading our recipes"))
	assert.True(t, extractor.DetectPaywall("This article is for SUBSCRIBERS ONLY."))
	assert.False(t, extractor.DetectPaywall("Subscribe to our newsletter for weekly recipes"))
	assert.False(t, extractor.DetectPaywall("Mix flour and water."))
}
