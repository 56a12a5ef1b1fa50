package extractor

import (
	"encoding/json"

	"forkful/internal/domain"
)

// CoerceRecipeReply validates and normalizes the generative model's JSON reply
// into the canonical recipe shape. All three generative call sites (web HTML,
// video, cookbook image) go through this one function so their normalization
// cannot drift.
//
// notes carries the model's free-text caveat (extractionNotes), surfaced on
// the video path. The returned error is always a *domain.ExtractionError.
func CoerceRecipeReply(raw []byte) (rec *domain.ExtractedRecipe, notes string, err error) {
	var reply map[string]any
	if jsonErr := json.Unmarshal(raw, &reply); jsonErr != nil {
		return nil, "", domain.NewExtractionError(domain.ErrExtractionFailed,
			"model reply was not valid JSON: "+jsonErr.Error())
	}
	if reply == nil {
		return nil, "", domain.NewExtractionError(domain.ErrExtractionFailed,
			"model reply was not a JSON object")
	}

	if declined, derr := declinedError(reply); declined {
		return nil, "", derr
	}

	title := norm(stringValue(reply["title"]))
	if title == "" {
		return nil, "", domain.NewExtractionError(domain.ErrNoRecipeFound,
			"model reply did not include a recipe title")
	}

	rec = &domain.ExtractedRecipe{
		Title:        title,
		ImageURL:     norm(stringValue(reply["imageUrl"])),
		Ingredients:  coerceIngredients(reply["ingredients"]),
		Instructions: coerceInstructions(reply["instructions"]),
		Servings:     intOr(reply["servings"], domain.DefaultServings),
		PrepTime:     intOr(reply["prepTime"], 0),
		CookTime:     intOr(reply["cookTime"], 0),
		Confidence:   coerceConfidence(reply["confidence"]),
		Method:       domain.MethodAI,
	}
	if rec.Servings <= 0 {
		rec.Servings = domain.DefaultServings
	}

	// A title with no ingredients and no instructions is not a recipe; letting
	// it through would save empty recipes as successes.
	if len(rec.Ingredients) == 0 && len(rec.Instructions) == 0 {
		return nil, "", domain.NewExtractionError(domain.ErrNoRecipeFound,
			"model reply contained no ingredients or instructions")
	}

	notes, _ = reply["extractionNotes"].(string)
	return rec, norm(notes), nil
}

// declinedError recognizes the explicit "not a recipe" escape values the
// prompts allow the model to return.
func declinedError(reply map[string]any) (bool, error) {
	if v, ok := reply["isRecipe"].(bool); ok && !v {
		switch norm(stringValue(reply["reason"])) {
		case string(domain.ErrPoorQuality):
			return true, domain.NewExtractionError(domain.ErrPoorQuality,
				"the image is too unclear to read a recipe from")
		case string(domain.ErrNotARecipe):
			return true, domain.NewExtractionError(domain.ErrNotARecipe,
				"this page does not contain a recipe")
		default:
			return true, domain.NewExtractionError(domain.ErrNoRecipeFound,
				"the model found no recipe in this content")
		}
	}
	return false, nil
}

func coerceIngredients(v any) []domain.RawIngredient {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]domain.RawIngredient, 0, len(arr))
	for _, entry := range arr {
		switch e := entry.(type) {
		case string:
			if s := norm(e); s != "" {
				out = append(out, domain.RawIngredient{Raw: s})
			}
		case map[string]any:
			if ing, ok := coerceIngredientObject(e); ok {
				out = append(out, ing)
			}
		}
		// anything else is dropped
	}
	return out
}

func coerceIngredientObject(e map[string]any) (domain.RawIngredient, bool) {
	raw := norm(stringValue(e["raw"]))
	name := norm(stringValue(e["name"]))
	if raw == "" {
		raw = name
	}
	if raw == "" {
		return domain.RawIngredient{}, false
	}

	ing := domain.RawIngredient{Raw: raw}
	if name != "" {
		qty := numberOr(e["quantity"], 1)
		if qty < 0 {
			qty = 1
		}
		unit := norm(stringValue(e["unit"]))
		if unit == "" {
			unit = "item"
		}
		ing.Parsed = &domain.ParsedIngredient{
			Name:     name,
			Quantity: qty,
			Unit:     unit,
			Category: domain.NormalizeCategory(norm(stringValue(e["category"]))),
		}
	}
	return ing, true
}

func coerceInstructions(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var steps []string
	for _, entry := range arr {
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

// coerceConfidence guarantees an entry for every confidence field, mapping
// unknown labels to low.
func coerceConfidence(v any) map[string]domain.Confidence {
	out := make(map[string]domain.Confidence, len(domain.ConfidenceFields))
	m, _ := v.(map[string]any)
	for _, field := range domain.ConfidenceFields {
		label, _ := m[field].(string)
		out[field] = domain.NormalizeConfidence(label)
	}
	return out
}

func numberOr(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return def
}

func intOr(v any, def int) int {
	n, ok := v.(float64)
	if !ok || n < 0 {
		return def
	}
	return int(n)
}
