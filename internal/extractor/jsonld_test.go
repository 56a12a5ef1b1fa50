package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/domain"
	"forkful/internal/extractor"
)

const cookieHTML = `<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Recipe",
  "name": "Chocolate Chip Cookies",
  "image": "https://example.com/cookies.jpg",
  "recipeIngredient": ["2 cups flour", "1 cup sugar", "1 cup chocolate chips"],
  "recipeInstructions": [
    {"@type": "HowToStep", "text": "Mix the dry ingredients."},
    {"@type": "HowToStep", "text": "Fold in the chocolate chips."},
    {"@type": "HowToStep", "text": "Bake at 375F for 12 minutes."}
  ],
  "recipeYield": "24 cookies",
  "prepTime": "PT15M",
  "cookTime": "PT12M"
}
</script>
</head><body></body></html>`

func TestParseJSONLD_FullRecipe(t *testing.T) {
	rec := extractor.ParseJSONLD(cookieHTML)
	require.NotNil(t, rec)

	assert.Equal(t, "Chocolate Chip Cookies", rec.Title)
	assert.Equal(t, "https://example.com/cookies.jpg", rec.ImageURL)
	assert.Len(t, rec.Ingredients, 3)
	assert.Equal(t, "2 cups flour", rec.Ingredients[0].Raw)
	// decomposition is deferred to the generative layer
	assert.Nil(t, rec.Ingredients[0].Parsed)
	assert.Len(t, rec.Instructions, 3)
	assert.Equal(t, 24, rec.Servings)
	assert.Equal(t, 15, rec.PrepTime)
	assert.Equal(t, 12, rec.CookTime)
	assert.Equal(t, domain.MethodJSONLD, rec.Method)

	assert.Equal(t, domain.ConfidenceHigh, rec.Confidence[domain.FieldTitle])
	assert.Equal(t, domain.ConfidenceHigh, rec.Confidence[domain.FieldIngredients])
	assert.Equal(t, domain.ConfidenceHigh, rec.Confidence[domain.FieldPrepTime])
}

func TestParseJSONLD_GraphAndTypeArray(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@graph": [
	  {"@type": "WebPage", "name": "Some page"},
	  {"@type": ["Recipe", "CreativeWork"], "name": "Lentil Soup",
	   "recipeIngredient": ["1 cup lentils"],
	   "recipeInstructions": "Simmer the lentils until tender."}
	]}
	</script></head></html>`

	rec := extractor.ParseJSONLD(html)
	require.NotNil(t, rec)
	assert.Equal(t, "Lentil Soup", rec.Title)
	assert.Len(t, rec.Ingredients, 1)
	assert.Equal(t, []string{"Simmer the lentils until tender."}, rec.Instructions)
}

func TestParseJSONLD_MalformedBlockIsSkipped(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{not valid json</script>
	<script type="application/ld+json">
	{"@type": "Recipe", "name": "Second Block Salad", "recipeIngredient": ["1 head lettuce"]}
	</script></head></html>`

	rec := extractor.ParseJSONLD(html)
	require.NotNil(t, rec)
	assert.Equal(t, "Second Block Salad", rec.Title)
}

func TestParseJSONLD_MissingFieldsGetDefaults(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "Recipe", "name": "Mystery Dish", "recipeIngredient": ["1 thing"]}
	</script></head></html>`

	rec := extractor.ParseJSONLD(html)
	require.NotNil(t, rec)
	assert.Equal(t, "", rec.ImageURL)
	assert.Equal(t, domain.ConfidenceLow, rec.Confidence[domain.FieldImageURL])
	assert.Equal(t, domain.DefaultServings, rec.Servings)
	assert.Equal(t, domain.ConfidenceLow, rec.Confidence[domain.FieldServings])
	assert.Equal(t, 0, rec.PrepTime)
	assert.Equal(t, domain.ConfidenceLow, rec.Confidence[domain.FieldPrepTime])
}

func TestParseJSONLD_NonNumericYieldIsMedium(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "Recipe", "name": "Family Stew", "recipeYield": "a generous pot",
	 "recipeIngredient": ["1 lb beef"]}
	</script></head></html>`

	rec := extractor.ParseJSONLD(html)
	require.NotNil(t, rec)
	assert.Equal(t, domain.DefaultServings, rec.Servings)
	assert.Equal(t, domain.ConfidenceMedium, rec.Confidence[domain.FieldServings])
}

func TestParseJSONLD_ImageShapes(t *testing.T) {
	cases := map[string]string{
		`"image": "https://x.test/a.jpg"`:                               "https://x.test/a.jpg",
		`"image": ["https://x.test/b.jpg", "https://x.test/c.jpg"]`:     "https://x.test/b.jpg",
		`"image": [{"@type": "ImageObject", "url": "https://x.test/d.jpg"}]`: "https://x.test/d.jpg",
	}
	for imageJSON, want := range cases {
		html := `<html><head><script type="application/ld+json">
		{"@type": "Recipe", "name": "Test", ` + imageJSON + `, "recipeIngredient": ["1 egg"]}
		</script></head></html>`
		rec := extractor.ParseJSONLD(html)
		require.NotNil(t, rec, imageJSON)
		assert.Equal(t, want, rec.ImageURL, imageJSON)
	}
}

func TestParseJSONLD_NoRecipe(t *testing.T) {
	assert.Nil(t, extractor.ParseJSONLD(`<html><body><p>hello</p></body></html>`))
	assert.Nil(t, extractor.ParseJSONLD(`<html><head><script type="application/ld+json">
	{"@type": "Article", "name": "Not food"}</script></head></html>`))
	// Recipe without a name is not usable
	assert.Nil(t, extractor.ParseJSONLD(`<html><head><script type="application/ld+json">
	{"@type": "Recipe", "recipeIngredient": ["1 egg"]}</script></head></html>`))
}

func TestParseJSONLD_NumberedInstructionBlob(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "Recipe", "name": "Quick Toast",
	 "recipeInstructions": "1. Toast the bread. 2. Butter it. 3. Serve warm."}
	</script></head></html>`

	rec := extractor.ParseJSONLD(html)
	require.NotNil(t, rec)
	assert.Len(t, rec.Instructions, 3)
	assert.Equal(t, "Toast the bread.", rec.Instructions[0])
}
