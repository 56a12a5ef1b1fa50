package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forkful/internal/dietconv"
	"forkful/internal/domain"
	"forkful/internal/extractor"
	"forkful/internal/service"
	"forkful/mocks"
)

const jsonldPage = `<html><head><script type="application/ld+json">
{"@type": "Recipe", "name": "Weeknight Chili",
 "recipeIngredient": ["1 lb ground beef", "1 can kidney beans"],
 "recipeInstructions": "Brown the beef, add the beans, simmer."}
</script></head></html>`

const modelReply = `{
	"title": "Weeknight Chili",
	"ingredients": ["1 lb ground beef"],
	"instructions": ["Brown the beef."],
	"confidence": {"title": "high", "imageUrl": "low", "ingredients": "high",
		"instructions": "high", "servings": "low", "prepTime": "low", "cookTime": "low"}
}`

type fixture struct {
	fetcher   *mocks.MockContentFetcher
	generator *mocks.MockGenerator
	platform  *mocks.MockVideoPlatform
	store     *mocks.MockRecipeStore
	svc       service.ImportService
}

func newFixture() *fixture {
	f := &fixture{
		fetcher:   new(mocks.MockContentFetcher),
		generator: new(mocks.MockGenerator),
		platform:  new(mocks.MockVideoPlatform),
		store:     new(mocks.MockRecipeStore),
	}
	f.svc = service.NewImportService(
		extractor.NewWebExtractor(f.fetcher, f.generator),
		extractor.NewImageExtractor(f.generator),
		f.platform,
		f.generator,
		dietconv.NewConverter(f.generator),
		f.store,
	)
	return f
}

func TestImportFromWeb_PersistsSuccess(t *testing.T) {
	f := newFixture()
	f.fetcher.On("Fetch", mock.Anything, "https://example.com/chili").Return(jsonldPage, nil)
	f.store.On("Save", mock.Anything, mock.AnythingOfType("*domain.Recipe")).Return(nil)

	res, recipe := f.svc.ImportFromWeb(context.Background(), "https://example.com/chili")

	require.True(t, res.Success)
	require.NotNil(t, recipe)
	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, "Weeknight Chili", recipe.Title)
	assert.Equal(t, "https://example.com/chili", recipe.SourceURL)
	f.store.AssertExpectations(t)
}

func TestImportFromWeb_FailureIsNotPersisted(t *testing.T) {
	f := newFixture()
	f.fetcher.On("Fetch", mock.Anything, mock.Anything).
		Return("", domain.NewExtractionError(domain.ErrFetchFailed, "down"))

	res, recipe := f.svc.ImportFromWeb(context.Background(), "https://example.com/down")

	assert.False(t, res.Success)
	assert.Nil(t, recipe)
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestImportFromWeb_SaveFailureKeepsResult(t *testing.T) {
	f := newFixture()
	f.fetcher.On("Fetch", mock.Anything, mock.Anything).Return(jsonldPage, nil)
	f.store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	res, recipe := f.svc.ImportFromWeb(context.Background(), "https://example.com/chili")

	assert.True(t, res.Success)
	assert.Nil(t, recipe)
}

func TestImportFromYouTube_PersistsPreview(t *testing.T) {
	f := newFixture()
	f.platform.On("VideoMetadata", mock.Anything, "dQw4w9WgXcQ").Return(&domain.VideoMetadata{
		VideoID:      "dQw4w9WgXcQ",
		Title:        "Chili Video",
		ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
	}, nil)
	f.platform.On("Transcript", mock.Anything, "dQw4w9WgXcQ").Return("brown the beef", nil)
	f.generator.On("GenerateText", mock.Anything, mock.Anything).Return([]byte(modelReply), nil)

	var saved *domain.Recipe
	f.store.On("Save", mock.Anything, mock.AnythingOfType("*domain.Recipe")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Recipe) }).
		Return(nil)

	preview, eerr := f.svc.ImportFromYouTube(context.Background(), "dQw4w9WgXcQ")

	require.Nil(t, eerr)
	require.NotNil(t, preview)
	require.NotNil(t, saved)
	assert.Equal(t, "Weeknight Chili", saved.Title)
	assert.Equal(t, preview.SourceURL, saved.SourceURL)
	assert.Equal(t, domain.MethodAI, saved.Method)
}

func TestImportFromImage_PersistsWithoutSourceURL(t *testing.T) {
	f := newFixture()
	f.generator.On("GenerateVision", mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Return([]byte(modelReply), nil)

	var saved *domain.Recipe
	f.store.On("Save", mock.Anything, mock.AnythingOfType("*domain.Recipe")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Recipe) }).
		Return(nil)

	res, recipe := f.svc.ImportFromImage(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")

	require.True(t, res.Success)
	require.NotNil(t, recipe)
	require.NotNil(t, saved)
	assert.Empty(t, saved.SourceURL)
}

func TestConvertDiet_UnknownRecipe(t *testing.T) {
	f := newFixture()
	f.store.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := f.svc.ConvertDiet(context.Background(), "missing", domain.DietVegan)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.generator.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
}

func TestConvertDiet_Success(t *testing.T) {
	f := newFixture()
	f.store.On("GetByID", mock.Anything, "r-1").Return(&domain.Recipe{
		ID:          "r-1",
		Title:       "Chili",
		Ingredients: []domain.RawIngredient{{Raw: "1 lb ground beef"}},
	}, nil)
	f.generator.On("GenerateText", mock.Anything, mock.Anything).Return([]byte(`{
		"ingredients": [{"original": "1 lb ground beef", "converted": "1 lb lentils", "changed": true}]
	}`), nil)

	conv, err := f.svc.ConvertDiet(context.Background(), "r-1", domain.DietVegan)
	require.NoError(t, err)
	require.Len(t, conv.Ingredients, 1)
	assert.True(t, conv.Ingredients[0].Changed)
}
