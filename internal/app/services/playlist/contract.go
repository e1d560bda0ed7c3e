package playlist

import (
	"context"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type CatalogClient interface {
	SearchPlaylists(ctx context.Context, token, query, market string) ([]Playlist, error)
	CategoryPlaylists(ctx context.Context, token, categoryID, market string) ([]Playlist, error)
	PlaylistTracksSample(ctx context.Context, token, playlistID, market string, limit int) ([]Track, error)
}
