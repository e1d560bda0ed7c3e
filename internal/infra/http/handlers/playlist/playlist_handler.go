package playlist

import (
	"go.opentelemetry.io/otel/trace"
)

type PlaylistHandler struct {
	tracer          trace.Tracer
	playlistService PlaylistService
}

func New(
	tracer trace.Tracer,
	playlistService PlaylistService,
) *PlaylistHandler {
	return &PlaylistHandler{
		tracer:          tracer,
		playlistService: playlistService,
	}
}
