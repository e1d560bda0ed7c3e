package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTokenChecker struct {
	mock.Mock
}

func (m *MockTokenChecker) Exchange(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
