package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moodmix/playlist-api/internal/app/services/playlist"
)

type MockTokenSource struct {
	mock.Mock
}

func (m *MockTokenSource) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) SearchPlaylists(ctx context.Context, token, query, market string) ([]playlist.Playlist, error) {
	args := m.Called(ctx, token, query, market)
	var playlists []playlist.Playlist
	if v := args.Get(0); v != nil {
		playlists = v.([]playlist.Playlist)
	}
	return playlists, args.Error(1)
}

func (m *MockCatalogClient) CategoryPlaylists(ctx context.Context, token, categoryID, market string) ([]playlist.Playlist, error) {
	args := m.Called(ctx, token, categoryID, market)
	var playlists []playlist.Playlist
	if v := args.Get(0); v != nil {
		playlists = v.([]playlist.Playlist)
	}
	return playlists, args.Error(1)
}

func (m *MockCatalogClient) PlaylistTracksSample(ctx context.Context, token, playlistID, market string, limit int) ([]playlist.Track, error) {
	args := m.Called(ctx, token, playlistID, market, limit)
	var tracks []playlist.Track
	if v := args.Get(0); v != nil {
		tracks = v.([]playlist.Track)
	}
	return tracks, args.Error(1)
}
