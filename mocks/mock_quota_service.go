package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockQuotaService is a mock implementation of port.QuotaService.
type MockQuotaService struct {
	mock.Mock
}

func (m *MockQuotaService) Check(units int) bool {
	args := m.Called(units)
	return args.Bool(0)
}

func (m *MockQuotaService) Record(units int, op string) {
	m.Called(units, op)
}
