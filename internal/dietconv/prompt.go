package dietconv

import (
	"strconv"
	"strings"

	"forkful/internal/domain"
)

// Replacement heuristics embedded per diet so the model converts with the
// substitutions home cooks actually use.
var dietHeuristics = map[domain.DietType]string{
	domain.DietVegetarian: `- Replace meat and poultry with plant proteins: firm tofu, tempeh, seitan, beans, lentils, or mushrooms for umami-heavy dishes.
- Replace meat stock with vegetable stock.
- Fish sauce becomes soy sauce or a vegetarian fish sauce; gelatin becomes agar.
- Eggs and dairy are allowed and should stay unless the recipe reads better without them.`,
	domain.DietVegan: `- Replace all meat, poultry, and fish with plant proteins: tofu, tempeh, seitan, beans, lentils, jackfruit.
- Butter becomes plant butter or oil; milk becomes oat, soy, or almond milk; cream becomes coconut cream or cashew cream.
- Cheese becomes vegan cheese or nutritional yeast; honey becomes maple syrup or agave.
- Eggs become flax eggs (1 tbsp ground flax + 3 tbsp water per egg) in baking, or tofu scramble in savory dishes.`,
	domain.DietGlutenFree: `- Wheat flour becomes a 1:1 gluten-free flour blend; add 1/4 tsp xanthan gum per cup if the blend has none.
- Regular pasta becomes rice or corn pasta; soy sauce becomes tamari; couscous and bulgur become quinoa or rice.
- Bread, buns, and tortillas become certified gluten-free versions.
- Watch hidden gluten: stock cubes, malt vinegar, beer, some spice blends.`,
}

// BuildDietPrompt returns the conversion prompt for a stored recipe and a
// target diet. The model replies with a diff, not a fresh recipe.
func BuildDietPrompt(recipe *domain.Recipe, diet domain.DietType) string {
	var b strings.Builder
	b.WriteString("You are a recipe conversion assistant. Convert the following recipe to be strictly ")
	b.WriteString(string(diet))
	b.WriteString(".\n\nSubstitution guidance:\n")
	b.WriteString(dietHeuristics[diet])
	b.WriteString("\n\nRecipe: ")
	b.WriteString(recipe.Title)
	b.WriteString("\n\nIngredients:\n")
	for _, ing := range recipe.Ingredients {
		b.WriteString("- ")
		b.WriteString(ing.Raw)
		b.WriteString("\n")
	}
	b.WriteString("\nInstructions:\n")
	for i, step := range recipe.Instructions {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(step)
		b.WriteString("\n")
	}
	b.WriteString(`
Return ONLY valid JSON with no markdown formatting, no code fences, no explanation, just the raw JSON object:
{
  "ingredients": [
    {"original": "", "converted": "", "changed": false, "reason": ""}
  ],
  "instructions": [""],
  "changes": [""],
  "tips": [""]
}

Rules:
- "ingredients" must contain one entry per original ingredient line, in order. Keep "converted" identical to "original" and "changed" false when no substitution is needed; give a short "reason" when it is.
- "instructions" is the full rewritten instruction list, adjusted for the substitutions (cooking times and techniques included).
- "changes" lists each instruction-level adjustment in plain language.
- "tips" gives 1-3 short serving or technique tips for the converted dish.`)
	return b.String()
}
