package extractor

import (
	"context"
	"log"
	"net/url"
	"strings"

	"forkful/internal/domain"
	"forkful/internal/port"
)

// Attempt is one structured-markup tier of the waterfall. Run returns nil when
// the tier finds nothing usable.
type Attempt struct {
	Name string
	Run  func(html string) *domain.ExtractedRecipe
}

// WebExtractor runs the three-tier waterfall for a web URL: JSON-LD, then
// microdata, then the generative adapter. Tiers execute strictly sequentially
// so the expensive tier only runs when the cheap ones declined.
type WebExtractor struct {
	fetcher   port.ContentFetcher
	generator port.Generator
	attempts  []Attempt
}

// NewWebExtractor creates the web-URL orchestrator with the standard tiers.
func NewWebExtractor(f port.ContentFetcher, g port.Generator) *WebExtractor {
	return &WebExtractor{
		fetcher:   f,
		generator: g,
		attempts: []Attempt{
			{Name: "jsonld", Run: ParseJSONLD},
			{Name: "microdata", Run: ParseMicrodata},
		},
	}
}

// ValidateURL checks a URL before any network call. The returned error, if
// any, is a typed INVALID_URL with a user-facing message.
func ValidateURL(raw string) *domain.ExtractionError {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.NewExtractionError(domain.ErrInvalidURL, "URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewExtractionError(domain.ErrInvalidURL,
			"not a valid http(s) URL: "+raw)
	}
	return nil
}

// Extract runs the full pipeline and returns a tagged result; every expected
// failure mode is a value, never a panic.
func (w *WebExtractor) Extract(ctx context.Context, rawURL string) domain.ExtractionResult {
	if verr := ValidateURL(rawURL); verr != nil {
		return domain.ExtractionResult{Err: verr}
	}

	html, err := w.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return domain.FailErr(err)
	}

	if DetectPaywall(html) {
		return domain.Fail(domain.ErrPaywallDetected,
			"this page appears to be behind a paywall")
	}

	for _, a := range w.attempts {
		if rec := runAttempt(a, html); rec != nil {
			return domain.Ok(rec)
		}
	}

	return w.generativeTier(ctx, html)
}

// runAttempt executes one tier with a recover boundary: a parser bug skips
// the tier, it never aborts the pipeline.
func runAttempt(a Attempt, html string) (rec *domain.ExtractedRecipe) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extractor.WebExtractor: %s tier panicked: %v", a.Name, r)
			rec = nil
		}
	}()
	return a.Run(html)
}

func (w *WebExtractor) generativeTier(ctx context.Context, html string) domain.ExtractionResult {
	prompt := BuildWebPrompt(SanitizeHTML(html))
	raw, err := w.generator.GenerateText(ctx, prompt)
	if err != nil {
		return domain.FailErr(err)
	}
	rec, _, err := CoerceRecipeReply(raw)
	if err != nil {
		return domain.FailErr(err)
	}
	return domain.Ok(rec)
}

// ImageExtractor is the cookbook-page orchestrator: a single generative tier
// in vision mode, since a photo has no structured markup to try first.
type ImageExtractor struct {
	generator port.Generator
}

// NewImageExtractor creates the cookbook-image orchestrator.
func NewImageExtractor(g port.Generator) *ImageExtractor {
	return &ImageExtractor{generator: g}
}

// Extract submits the image to the generative adapter and coerces the reply.
// NOT_A_RECIPE and POOR_QUALITY declines come back as their own error types.
func (e *ImageExtractor) Extract(ctx context.Context, image []byte, mimeType string) domain.ExtractionResult {
	if len(image) == 0 {
		return domain.Fail(domain.ErrExtractionFailed, "image is empty")
	}
	raw, err := e.generator.GenerateVision(ctx, BuildImagePrompt(), image, mimeType)
	if err != nil {
		return domain.FailErr(err)
	}
	rec, _, err := CoerceRecipeReply(raw)
	if err != nil {
		return domain.FailErr(err)
	}
	return domain.Ok(rec)
}
