package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	app "github.com/moodmix/playlist-api/internal/app/services/playlist"
)

type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) Aggregate(ctx context.Context, params app.Params) (app.Result, error) {
	args := m.Called(ctx, params)
	var result app.Result
	if v := args.Get(0); v != nil {
		result = v.(app.Result)
	}
	return result, args.Error(1)
}
