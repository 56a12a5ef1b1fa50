package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"forkful/internal/domain"
	"forkful/internal/duration"
)

// microdataCeiling caps every confidence the microdata parser assigns.
// Inline itemprop markup is structurally weaker than ld+json, so even a
// present field is never more than medium.
const microdataCeiling = domain.ConfidenceMedium

// ParseMicrodata extracts a recipe from schema.org microdata (itemprop
// attributes). Returns nil unless the page declares a Recipe itemtype or
// carries recipeIngredient/recipeInstructions props, and a title is found.
func ParseMicrodata(html string) *domain.ExtractedRecipe {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	scope := doc.Find(`[itemtype*="schema.org/Recipe"]`).First()
	root := scope
	if scope.Length() == 0 {
		if doc.Find(`[itemprop="recipeIngredient"]`).Length() == 0 &&
			doc.Find(`[itemprop="recipeInstructions"]`).Length() == 0 {
			return nil
		}
		root = doc.Selection
	}

	title := itempropValue(root.Find(`[itemprop="name"]`).First())
	if title == "" {
		return nil
	}

	rec := &domain.ExtractedRecipe{
		Title:      title,
		Servings:   domain.DefaultServings,
		Confidence: map[string]domain.Confidence{},
		Method:     domain.MethodMicrodata,
	}
	rec.Confidence[domain.FieldTitle] = microdataCeiling

	rec.ImageURL = imagePropValue(root.Find(`[itemprop="image"]`).First())
	rec.Confidence[domain.FieldImageURL] = confidenceFor(rec.ImageURL != "", microdataCeiling)

	var lines []string
	root.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		lines = append(lines, itempropValue(s))
	})
	rec.Ingredients = wrapRawIngredients(lines)
	rec.Confidence[domain.FieldIngredients] = confidenceFor(len(rec.Ingredients) > 0, microdataCeiling)

	rec.Instructions = microdataInstructions(root)
	rec.Confidence[domain.FieldInstructions] = confidenceFor(len(rec.Instructions) > 0, microdataCeiling)

	yield := itempropValue(root.Find(`[itemprop="recipeYield"]`).First())
	if n, ok := firstInt(yield); ok && n > 0 {
		rec.Servings = n
		rec.Confidence[domain.FieldServings] = microdataCeiling
	} else if yield != "" {
		rec.Confidence[domain.FieldServings] = microdataCeiling
	} else {
		rec.Confidence[domain.FieldServings] = domain.ConfidenceLow
	}

	prep := durationPropValue(root.Find(`[itemprop="prepTime"]`).First())
	rec.PrepTime = duration.ToMinutes(prep)
	rec.Confidence[domain.FieldPrepTime] = confidenceFor(prep != "", microdataCeiling)

	cook := durationPropValue(root.Find(`[itemprop="cookTime"]`).First())
	rec.CookTime = duration.ToMinutes(cook)
	rec.Confidence[domain.FieldCookTime] = confidenceFor(cook != "", microdataCeiling)

	return rec
}

// itempropValue prefers the content attribute over inline text.
func itempropValue(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	if v, ok := s.Attr("content"); ok && norm(v) != "" {
		return norm(v)
	}
	return norm(s.Text())
}

func imagePropValue(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"content", "src", "href"} {
		if v, ok := s.Attr(attr); ok && norm(v) != "" {
			return norm(v)
		}
	}
	return ""
}

// durationPropValue reads content or datetime attributes, which is where
// microdata carries ISO-8601 durations.
func durationPropValue(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"content", "datetime"} {
		if v, ok := s.Attr(attr); ok && norm(v) != "" {
			return norm(v)
		}
	}
	return norm(s.Text())
}

func microdataInstructions(root *goquery.Selection) []string {
	nodes := root.Find(`[itemprop="recipeInstructions"]`)
	if nodes.Length() == 0 {
		return nil
	}
	if nodes.Length() == 1 {
		return splitInstructionText(itempropValue(nodes.First()))
	}
	var steps []string
	nodes.Each(func(_ int, s *goquery.Selection) {
		if v := itempropValue(s); v != "" {
			steps = append(steps, v)
		}
	})
	return steps
}
