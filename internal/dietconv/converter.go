// Package dietconv rewrites an existing recipe for a dietary constraint.
package dietconv

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"forkful/internal/domain"
	"forkful/internal/port"
)

// Converter produces diet-conversion diffs via the generative model.
type Converter struct {
	generator port.Generator
}

// NewConverter creates a Converter.
func NewConverter(g port.Generator) *Converter {
	return &Converter{generator: g}
}

// Convert rewrites the recipe's ingredients and instructions for the target
// diet and returns the structural diff. The returned error is always a typed
// *domain.ExtractionError.
func (c *Converter) Convert(ctx context.Context, recipe *domain.Recipe, diet domain.DietType) (*domain.DietConversion, error) {
	raw, err := c.generator.GenerateText(ctx, BuildDietPrompt(recipe, diet))
	if err != nil {
		return nil, err
	}
	return coerceConversionReply(raw, recipe, diet)
}

// dietReply mirrors the prompt's output schema loosely; every field is
// re-validated before use.
type dietReply struct {
	Ingredients []struct {
		Original  string `json:"original"`
		Converted string `json:"converted"`
		Changed   bool   `json:"changed"`
		Reason    string `json:"reason"`
	} `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Changes      []string `json:"changes"`
	Tips         []string `json:"tips"`
}

func coerceConversionReply(raw []byte, recipe *domain.Recipe, diet domain.DietType) (*domain.DietConversion, error) {
	var reply dietReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, domain.NewExtractionError(domain.ErrExtractionFailed,
			"model reply was not valid JSON: "+err.Error())
	}
	if len(reply.Ingredients) == 0 {
		return nil, domain.NewExtractionError(domain.ErrExtractionFailed,
			"model reply contained no converted ingredients")
	}

	conv := &domain.DietConversion{Diet: diet}
	for _, ing := range reply.Ingredients {
		orig := strings.TrimSpace(ing.Original)
		converted := strings.TrimSpace(ing.Converted)
		if orig == "" && converted == "" {
			continue
		}
		if orig == "" {
			orig = converted
		}
		if converted == "" {
			converted = orig
		}
		swap := domain.IngredientSwap{
			Original:  orig,
			Converted: converted,
			Changed:   ing.Changed || !strings.EqualFold(orig, converted),
		}
		if swap.Changed {
			swap.Reason = strings.TrimSpace(ing.Reason)
		}
		conv.Ingredients = append(conv.Ingredients, swap)
	}

	for _, step := range reply.Instructions {
		if s := strings.TrimSpace(step); s != "" {
			conv.Instructions = append(conv.Instructions, s)
		}
	}
	// Conversion must not lose the recipe's method; fall back to the original
	// instructions when the model omits them.
	if len(conv.Instructions) == 0 {
		conv.Instructions = recipe.Instructions
	}

	conv.Changes = trimNonEmpty(reply.Changes)
	conv.Tips = trimNonEmpty(reply.Tips)
	return conv, nil
}

func trimNonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// leadingQtyRe strips quantity/unit prefixes like "2 cups ", "1/2 tsp ",
// "300 g " from an ingredient line. Best-effort cleanup for display, not a
// guaranteed-correct parser.
var leadingQtyRe = regexp.MustCompile(`(?i)^\s*\d+(?:[./]\d+)?(?:\s*-\s*\d+(?:[./]\d+)?)?\s*(?:cups?|cup|tbsps?|tablespoons?|tsps?|teaspoons?|oz|ounces?|lbs?|pounds?|g|grams?|kg|ml|l|liters?|litres?|cloves?|cans?|slices?|pieces?|pinch(?:es)?|sticks?)?\.?\s+(?:of\s+)?`)

// BareIngredientName strips a leading quantity/unit phrase from an ingredient
// line, leaving the ingredient itself.
func BareIngredientName(line string) string {
	out := leadingQtyRe.ReplaceAllString(strings.TrimSpace(line), "")
	out = strings.TrimSpace(out)
	if out == "" {
		return strings.TrimSpace(line)
	}
	return out
}
