package playlist

import (
	"context"

	app "github.com/moodmix/playlist-api/internal/app/services/playlist"
)

type PlaylistService interface {
	Aggregate(ctx context.Context, params app.Params) (app.Result, error)
}
