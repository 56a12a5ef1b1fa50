package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"forkful/internal/domain"
)

// MockVideoPlatform is a mock implementation of port.VideoPlatform.
type MockVideoPlatform struct {
	mock.Mock
}

func (m *MockVideoPlatform) VideoMetadata(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoMetadata), args.Error(1)
}

func (m *MockVideoPlatform) Transcript(ctx context.Context, videoID string) (string, error) {
	args := m.Called(ctx, videoID)
	return args.String(0), args.Error(1)
}
