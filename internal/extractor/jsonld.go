package extractor

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"forkful/internal/domain"
	"forkful/internal/duration"
)

// ParseJSONLD scans every <script type="application/ld+json"> block in html
// for a schema.org Recipe item and maps the first one with a non-empty name
// into the canonical shape. Malformed JSON in a block skips that block only.
// Returns nil when no usable recipe markup exists.
func ParseJSONLD(html string) *domain.ExtractedRecipe {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var recipe *domain.ExtractedRecipe
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var raw any
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return true // malformed block, keep scanning
		}
		for _, item := range flattenLDItems(raw) {
			if !isRecipeType(item["@type"]) {
				continue
			}
			if norm(stringValue(item["name"])) == "" {
				continue
			}
			recipe = mapJSONLDRecipe(item)
			return false
		}
		return true
	})
	return recipe
}

// flattenLDItems collects candidate objects from a decoded ld+json document:
// a single object, an array of objects, or objects nested under @graph.
func flattenLDItems(raw any) []map[string]any {
	var items []map[string]any
	switch t := raw.(type) {
	case map[string]any:
		items = append(items, t)
		if graph, ok := t["@graph"].([]any); ok {
			for _, g := range graph {
				if m, ok := g.(map[string]any); ok {
					items = append(items, m)
				}
			}
		}
	case []any:
		for _, v := range t {
			items = append(items, flattenLDItems(v)...)
		}
	}
	return items
}

// isRecipeType handles @type as a string or an array that includes "Recipe".
func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "Recipe"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func mapJSONLDRecipe(item map[string]any) *domain.ExtractedRecipe {
	rec := &domain.ExtractedRecipe{
		Title:      stringValue(item["name"]),
		Servings:   domain.DefaultServings,
		Confidence: map[string]domain.Confidence{},
		Method:     domain.MethodJSONLD,
	}
	rec.Confidence[domain.FieldTitle] = domain.ConfidenceHigh

	rec.ImageURL = stringValue(item["image"])
	rec.Confidence[domain.FieldImageURL] = confidenceFor(rec.ImageURL != "", domain.ConfidenceHigh)

	lines := ingredientLines(item)
	rec.Ingredients = wrapRawIngredients(lines)
	rec.Confidence[domain.FieldIngredients] = confidenceFor(len(rec.Ingredients) > 0, domain.ConfidenceHigh)

	rec.Instructions = instructionSteps(item["recipeInstructions"])
	rec.Confidence[domain.FieldInstructions] = confidenceFor(len(rec.Instructions) > 0, domain.ConfidenceHigh)

	rec.Servings, rec.Confidence[domain.FieldServings] = mapYield(item["recipeYield"])

	rec.PrepTime = duration.ToMinutes(stringValue(item["prepTime"]))
	rec.Confidence[domain.FieldPrepTime] = confidenceFor(stringValue(item["prepTime"]) != "", domain.ConfidenceHigh)

	rec.CookTime = duration.ToMinutes(stringValue(item["cookTime"]))
	rec.Confidence[domain.FieldCookTime] = confidenceFor(stringValue(item["cookTime"]) != "", domain.ConfidenceHigh)

	return rec
}

// ingredientLines reads recipeIngredient, falling back to the legacy
// ingredients key. Structured decomposition is deferred to the generative
// layer, so each line is carried raw.
func ingredientLines(item map[string]any) []string {
	v, ok := item["recipeIngredient"]
	if !ok {
		v = item["ingredients"]
	}
	arr, ok := v.([]any)
	if !ok {
		if s, ok := v.(string); ok && norm(s) != "" {
			return []string{s}
		}
		return nil
	}
	var lines []string
	for _, entry := range arr {
		if s, ok := entry.(string); ok {
			lines = append(lines, s)
		}
	}
	return lines
}

// instructionSteps handles a plain string blob, an array of strings, or an
// array of HowToStep objects carrying text or name.
func instructionSteps(v any) []string {
	switch t := v.(type) {
	case string:
		return splitInstructionText(t)
	case []any:
		var steps []string
		for _, entry := range t {
			switch e := entry.(type) {
			case string:
				if s := norm(e); s != "" {
					steps = append(steps, s)
				}
			case map[string]any:
				if s := stepText(e); s != "" {
					steps = append(steps, s)
				}
			}
		}
		return steps
	}
	return nil
}

func stepText(step map[string]any) string {
	if s, ok := step["text"].(string); ok && norm(s) != "" {
		return norm(s)
	}
	if s, ok := step["name"].(string); ok && norm(s) != "" {
		return norm(s)
	}
	// HowToSection nests its steps
	if sub, ok := step["itemListElement"].([]any); ok {
		return strings.Join(instructionSteps(sub), " ")
	}
	return ""
}

// mapYield extracts the first embedded integer from recipeYield. A numeric
// yield is high confidence, an implied but non-numeric one medium, an absent
// one low with the default serving count.
func mapYield(v any) (int, domain.Confidence) {
	switch t := v.(type) {
	case float64:
		if t > 0 {
			return int(t), domain.ConfidenceHigh
		}
	case string, []any, map[string]any:
		s := stringValue(t)
		if n, ok := firstInt(s); ok && n > 0 {
			return n, domain.ConfidenceHigh
		}
		if s != "" {
			return domain.DefaultServings, domain.ConfidenceMedium
		}
	}
	return domain.DefaultServings, domain.ConfidenceLow
}
