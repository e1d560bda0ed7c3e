package playlist

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

type PlaylistService struct {
	tracer  trace.Tracer
	tokens  TokenSource
	catalog CatalogClient
}

func New(
	tracer trace.Tracer,
	tokens TokenSource,
	catalog CatalogClient,
) PlaylistService {
	return PlaylistService{
		tracer:  tracer,
		tokens:  tokens,
		catalog: catalog,
	}
}

var (
	ErrAuth   = fmt.Errorf("spotify auth error")
	ErrSearch = fmt.Errorf("spotify search error")
)
