package playlist

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

const (
	DefaultMarket = "US"
	DefaultLimit  = 20
	MaxLimit      = 50

	// sampleFetchLimit caps how many tracks are pulled per playlist when
	// sampling is requested.
	sampleFetchLimit = 15
)

// Params are the resolved request parameters for one aggregation.
type Params struct {
	Mood          string
	Genre         string
	Market        string
	Limit         int
	MinTracks     int
	IncludeTracks bool
}

func (p Params) normalize() Params {
	p.Market = strings.ToUpper(p.Market)
	if p.Market == "" {
		p.Market = DefaultMarket
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.MinTracks < 0 {
		p.MinTracks = 0
	}
	return p
}

// Query echoes the parameters a result set was built from.
type Query struct {
	Mood      string `json:"mood"`
	Genre     string `json:"genre"`
	Q         string `json:"q"`
	Market    string `json:"market"`
	Limit     int    `json:"limit"`
	MinTracks int    `json:"minTracks"`
	Tracks    bool   `json:"tracks,omitempty"`
}

// Result is the aggregated response payload. Items holds either []Playlist
// or []PlaylistWithSamples depending on whether sampling was requested.
type Result struct {
	Query Query `json:"query"`
	Count int   `json:"count"`
	Items any   `json:"items"`
}

// Aggregate resolves a mood/genre pair into a ranked, deduplicated set of
// playlists: search first, category browse as a best-effort fallback when
// the raw search is empty, then filter by minimum track count, sort by
// track count, dedupe by id and truncate. With IncludeTracks set, a sample
// of tracks is fetched for every surviving playlist concurrently.
func (s PlaylistService) Aggregate(ctx context.Context, params Params) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "PlaylistService.Aggregate")
	defer span.End()

	params = params.normalize()

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrAuth, err.Error())
	}

	q := buildSearchQuery(params.Mood, params.Genre)

	playlists, err := s.catalog.SearchPlaylists(ctx, token, q, params.Market)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrSearch, err.Error())
	}

	// The fallback only triggers on zero raw search results. Results that
	// the minTracks filter later removes still count as a non-empty search.
	if len(playlists) == 0 {
		if categoryID := moodCategoryID(params.Mood); categoryID != "" {
			fromCategory, err := s.catalog.CategoryPlaylists(ctx, token, categoryID, params.Market)
			if err == nil {
				playlists = append(playlists, fromCategory...)
			}
		}
	}

	kept := playlists[:0]
	for _, p := range playlists {
		if p.TracksCount >= params.MinTracks {
			kept = append(kept, p)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].TracksCount > kept[j].TracksCount
	})

	kept = dedupeByID(kept)
	if len(kept) > params.Limit {
		kept = kept[:params.Limit]
	}

	echo := Query{
		Mood:      params.Mood,
		Genre:     params.Genre,
		Q:         q,
		Market:    params.Market,
		Limit:     params.Limit,
		MinTracks: params.MinTracks,
	}

	if !params.IncludeTracks {
		return Result{Query: echo, Count: len(kept), Items: kept}, nil
	}

	items := s.attachSamples(ctx, token, params.Market, kept)
	echo.Tracks = true
	return Result{Query: echo, Count: len(items), Items: items}, nil
}

// attachSamples fans out one track-sampling call per playlist and waits for
// all of them. A failed sample leaves that playlist's list empty; it never
// fails the request or aborts the other fetches.
func (s PlaylistService) attachSamples(ctx context.Context, token, market string, playlists []Playlist) []PlaylistWithSamples {
	items := make([]PlaylistWithSamples, len(playlists))

	var wg sync.WaitGroup
	for i, p := range playlists {
		items[i] = PlaylistWithSamples{Playlist: p, SampleTracks: []Track{}}

		wg.Add(1)
		go func(i int, playlistID string) {
			defer wg.Done()
			tracks, err := s.catalog.PlaylistTracksSample(ctx, token, playlistID, market, sampleFetchLimit)
			if err != nil || tracks == nil {
				return
			}
			items[i].SampleTracks = tracks
		}(i, p.ID)
	}
	wg.Wait()

	return items
}

func dedupeByID(playlists []Playlist) []Playlist {
	seen := make(map[string]struct{}, len(playlists))
	out := playlists[:0]
	for _, p := range playlists {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
