package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"forkful/internal/domain"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportFromWeb(ctx context.Context, url string) (domain.ExtractionResult, *domain.Recipe) {
	args := m.Called(ctx, url)
	res := args.Get(0).(domain.ExtractionResult)
	if args.Get(1) == nil {
		return res, nil
	}
	return res, args.Get(1).(*domain.Recipe)
}

func (m *MockImportService) ImportFromYouTube(ctx context.Context, input string) (*domain.YouTubeRecipePreview, *domain.ExtractionError) {
	args := m.Called(ctx, input)
	var preview *domain.YouTubeRecipePreview
	if args.Get(0) != nil {
		preview = args.Get(0).(*domain.YouTubeRecipePreview)
	}
	var eerr *domain.ExtractionError
	if args.Get(1) != nil {
		eerr = args.Get(1).(*domain.ExtractionError)
	}
	return preview, eerr
}

func (m *MockImportService) ImportFromImage(ctx context.Context, image []byte, mimeType string) (domain.ExtractionResult, *domain.Recipe) {
	args := m.Called(ctx, image, mimeType)
	res := args.Get(0).(domain.ExtractionResult)
	if args.Get(1) == nil {
		return res, nil
	}
	return res, args.Get(1).(*domain.Recipe)
}

func (m *MockImportService) ConvertDiet(ctx context.Context, recipeID string, diet domain.DietType) (*domain.DietConversion, error) {
	args := m.Called(ctx, recipeID, diet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DietConversion), args.Error(1)
}

func (m *MockImportService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockImportService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}
