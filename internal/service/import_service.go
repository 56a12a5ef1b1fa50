package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"forkful/internal/dietconv"
	"forkful/internal/domain"
	"forkful/internal/extractor"
	"forkful/internal/port"
	"forkful/internal/youtube"
)

// ImportService runs the extraction orchestrators and persists successes
// through the datastore port.
type ImportService interface {
	ImportFromWeb(ctx context.Context, url string) (domain.ExtractionResult, *domain.Recipe)
	ImportFromYouTube(ctx context.Context, input string) (*domain.YouTubeRecipePreview, *domain.ExtractionError)
	ImportFromImage(ctx context.Context, image []byte, mimeType string) (domain.ExtractionResult, *domain.Recipe)
	ConvertDiet(ctx context.Context, recipeID string, diet domain.DietType) (*domain.DietConversion, error)
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
}

type importService struct {
	web       *extractor.WebExtractor
	image     *extractor.ImageExtractor
	platform  port.VideoPlatform
	generator port.Generator
	converter *dietconv.Converter
	store     port.RecipeStore
}

// NewImportService wires the orchestrators to the datastore port.
func NewImportService(
	web *extractor.WebExtractor,
	image *extractor.ImageExtractor,
	platform port.VideoPlatform,
	generator port.Generator,
	converter *dietconv.Converter,
	store port.RecipeStore,
) ImportService {
	return &importService{
		web:       web,
		image:     image,
		platform:  platform,
		generator: generator,
		converter: converter,
		store:     store,
	}
}

// ImportFromWeb runs the waterfall and saves a success. The result is
// returned either way so callers can surface partial metadata on failure.
func (s *importService) ImportFromWeb(ctx context.Context, url string) (domain.ExtractionResult, *domain.Recipe) {
	res := s.web.Extract(ctx, url)
	if !res.Success {
		return res, nil
	}
	rec := s.persist(ctx, res.Data, url)
	return res, rec
}

// ImportFromYouTube drives a fresh flow per request and saves the preview.
func (s *importService) ImportFromYouTube(ctx context.Context, input string) (*domain.YouTubeRecipePreview, *domain.ExtractionError) {
	flow := youtube.NewFlow(s.platform, s.generator)
	preview, eerr := flow.Extract(ctx, input)
	if eerr != nil {
		return nil, eerr
	}

	recipe := &domain.Recipe{
		ID:           uuid.New().String(),
		Title:        preview.Title,
		ImageURL:     preview.ThumbnailURL,
		SourceURL:    preview.SourceURL,
		Ingredients:  preview.Ingredients,
		Instructions: preview.Instructions,
		Servings:     preview.Servings,
		PrepTime:     preview.PrepTime,
		CookTime:     preview.CookTime,
		Confidence:   preview.Confidence,
		Method:       domain.MethodAI,
	}
	if err := s.store.Save(ctx, recipe); err != nil {
		log.Printf("service.ImportService: saving recipe failed: %v", err)
	}
	return preview, nil
}

func (s *importService) ImportFromImage(ctx context.Context, image []byte, mimeType string) (domain.ExtractionResult, *domain.Recipe) {
	res := s.image.Extract(ctx, image, mimeType)
	if !res.Success {
		return res, nil
	}
	rec := s.persist(ctx, res.Data, "")
	return res, rec
}

func (s *importService) ConvertDiet(ctx context.Context, recipeID string, diet domain.DietType) (*domain.DietConversion, error) {
	recipe, err := s.store.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.converter.Convert(ctx, recipe, diet)
}

func (s *importService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.store.GetByID(ctx, id)
}

func (s *importService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.store.List(ctx)
}

func (s *importService) persist(ctx context.Context, data *domain.ExtractedRecipe, sourceURL string) *domain.Recipe {
	recipe := &domain.Recipe{
		ID:           uuid.New().String(),
		Title:        data.Title,
		ImageURL:     data.ImageURL,
		SourceURL:    sourceURL,
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		Servings:     data.Servings,
		PrepTime:     data.PrepTime,
		CookTime:     data.CookTime,
		Confidence:   data.Confidence,
		Method:       data.Method,
	}
	if err := s.store.Save(ctx, recipe); err != nil {
		// Extraction succeeded; a save failure must not turn it into an error.
		log.Printf("service.ImportService: saving recipe failed: %v", err)
		return nil
	}
	return recipe
}
