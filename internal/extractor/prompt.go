package extractor

// recipeSchema is the JSON contract every extraction prompt demands. The
// category list and confidence rubric are spelled out because coercion
// collapses anything outside them.
const recipeSchema = `Return ONLY valid JSON with no markdown formatting, no code fences, no explanation, just the raw JSON object.

The JSON object must follow this schema exactly:
{
  "isRecipe": true,
  "title": "",
  "imageUrl": "",
  "ingredients": [
    {"raw": "", "name": "", "quantity": 1, "unit": "", "category": ""}
  ],
  "instructions": [""],
  "servings": 4,
  "prepTime": 0,
  "cookTime": 0,
  "confidence": {
    "title": "high", "imageUrl": "low", "ingredients": "high",
    "instructions": "high", "servings": "medium", "prepTime": "low", "cookTime": "low"
  },
  "extractionNotes": ""
}

Rules:
- "raw" is the ingredient line exactly as written in the source. "name" is the bare ingredient. "quantity" is a number (1 when unstated), "unit" a short measure word ("item" when unstated).
- "category" must be one of exactly: meat (chicken, beef, pork, fish, shrimp), produce (vegetables, fruits, fresh herbs), dairy (milk, butter, cheese, yogurt, eggs), pantry (flour, sugar, rice, pasta, oil, canned goods), spices (salt, pepper, dried herbs, spice blends), condiments (soy sauce, ketchup, mustard, vinegar, dressings), bread (loaves, buns, tortillas, naan), other (anything that fits none of the above).
- "prepTime" and "cookTime" are whole minutes. "servings" is a whole number of portions.
- confidence values must be exactly "high" (stated explicitly in the source), "medium" (strongly implied), or "low" (guessed or missing).
- If the content does not contain a recipe, return exactly {"isRecipe": false} and nothing else.`

// BuildWebPrompt returns the extraction prompt for sanitized web page text.
func BuildWebPrompt(pageText string) string {
	return `You are a recipe extraction assistant. The text below is the visible content of a web page. Extract the single recipe it describes.

` + recipeSchema + `

Page content:
` + pageText
}

// BuildYouTubePrompt returns the extraction prompt for a cooking video. The
// spoken transcript, when present, outranks the promotional description; the
// model may use general cooking knowledge to fill in standard quantities or
// times the speaker leaves unstated, noting that in extractionNotes.
func BuildYouTubePrompt(title, description, transcript string) string {
	p := `You are a recipe extraction assistant. Extract the recipe demonstrated in this cooking video.

Video title: ` + title + `

Video description:
` + description + `
`
	if transcript != "" {
		p += `
Spoken transcript (this is what the cook actually did; when the transcript and the description disagree, trust the transcript):
` + transcript + `
`
	}
	p += `
If the speaker never states a standard quantity or time, you may infer a conventional value from general cooking knowledge; mention every such inference in "extractionNotes" (for example "quantities inferred").

` + recipeSchema
	return p
}

// BuildImagePrompt returns the extraction prompt for a photographed cookbook
// page. Two distinct decline reasons exist because the user can only fix one
// of them with a better photo.
func BuildImagePrompt() string {
	return `You are a recipe extraction assistant. The attached image is a photographed cookbook page. Extract the recipe printed on it.

` + recipeSchema + `

Additional escape values for images:
- If the page is legible but is not a recipe (table of contents, introduction, index), return exactly {"isRecipe": false, "reason": "NOT_A_RECIPE"}.
- If the photo is too blurry, dark, or cropped to read reliably, return exactly {"isRecipe": false, "reason": "POOR_QUALITY"}.`
}
