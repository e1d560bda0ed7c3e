package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/moodmix/playlist-api/internal/app/services/playlist"
)

const (
	APIBaseURL = "https://api.spotify.com"

	// searchLimit over-fetches so the aggregator has room to filter and
	// sort before truncating to the caller's requested limit.
	searchLimit = 30
)

// Client talks to the Spotify Web API directly and normalizes the raw
// responses into the canonical playlist/track shapes.
type Client struct {
	tracer trace.Tracer
	http   *resty.Client
}

func NewClient(tracer trace.Tracer, baseURL string) *Client {
	return &Client{
		tracer: tracer,
		http:   resty.New().SetBaseURL(baseURL),
	}
}

// SearchPlaylists runs a keyword search restricted to playlists. A non-2xx
// response is returned as an *APIError since search is the primary path.
func (c *Client) SearchPlaylists(ctx context.Context, token, query, market string) ([]playlist.Playlist, error) {
	ctx, span := c.tracer.Start(ctx, "SpotifyClient.SearchPlaylists")
	defer span.End()
	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("market", market),
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"q":      query,
			"type":   "playlist",
			"limit":  strconv.Itoa(searchLimit),
			"market": market,
		}).
		Get("/v1/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var page searchResponse
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return normalizePlaylists(page.Playlists.Items), nil
}

// CategoryPlaylists browses a category's playlists. This is a best-effort
// fallback: any failure, including a bad status or an unparsable body,
// yields an empty list instead of an error.
func (c *Client) CategoryPlaylists(ctx context.Context, token, categoryID, market string) ([]playlist.Playlist, error) {
	ctx, span := c.tracer.Start(ctx, "SpotifyClient.CategoryPlaylists")
	defer span.End()
	span.SetAttributes(attribute.String("category", categoryID))

	if categoryID == "" {
		return nil, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("category", categoryID).
		SetQueryParams(map[string]string{
			"country": market,
			"limit":   strconv.Itoa(searchLimit),
		}).
		Get("/v1/browse/categories/{category}/playlists")
	if err != nil || resp.IsError() {
		return nil, nil
	}

	var page searchResponse
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, nil
	}

	return normalizePlaylists(page.Playlists.Items), nil
}

// PlaylistTracksSample fetches up to limit tracks from a playlist. Failures
// are non-fatal and yield an empty list, since a playlist with no samples
// is still a valid result.
func (c *Client) PlaylistTracksSample(ctx context.Context, token, playlistID, market string, limit int) ([]playlist.Track, error) {
	ctx, span := c.tracer.Start(ctx, "SpotifyClient.PlaylistTracksSample")
	defer span.End()
	span.SetAttributes(attribute.String("playlist_id", playlistID))

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("id", playlistID).
		SetQueryParams(map[string]string{
			"market": market,
			"limit":  strconv.Itoa(limit),
		}).
		Get("/v1/playlists/{id}/tracks")
	if err != nil || resp.IsError() {
		return nil, nil
	}

	var page tracksResponse
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, nil
	}

	return normalizeTracks(page.Items), nil
}
