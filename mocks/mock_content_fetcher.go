package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockContentFetcher is a mock implementation of port.ContentFetcher.
type MockContentFetcher struct {
	mock.Mock
}

func (m *MockContentFetcher) Fetch(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}
