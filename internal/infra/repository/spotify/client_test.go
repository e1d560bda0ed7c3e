package spotify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/moodmix/playlist-api/internal/infra/repository/spotify"
)

const searchBody = `{
	"playlists": {
		"items": [
			{
				"id": "pl1",
				"name": "Deep Chill",
				"description": "slow it down",
				"external_urls": {"spotify": "https://open.spotify.com/playlist/pl1"},
				"images": [{"url": "https://img/1.jpg", "width": 300, "height": 300}],
				"owner": {"display_name": "Spotify"},
				"tracks": {"total": 120}
			},
			null,
			{"name": "no id at all"},
			{"id": 42, "name": "numeric id"},
			"just a string",
			{"id": "pl2", "name": "Bare minimum"}
		]
	}
}`

func newClient(t *testing.T, handler http.HandlerFunc) *spotify.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return spotify.NewClient(otel.Tracer("test"), server.URL)
}

func TestSearchPlaylists_NormalizesUntrustedItems(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/search", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "calm chill playlist mix", q.Get("q"))
		require.Equal(t, "playlist", q.Get("type"))
		require.Equal(t, "30", q.Get("limit"))
		require.Equal(t, "US", q.Get("market"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody))
	})

	playlists, err := client.SearchPlaylists(context.Background(), "tok", "calm chill playlist mix", "US")
	require.NoError(t, err)
	require.Len(t, playlists, 2)

	assert.Equal(t, "pl1", playlists[0].ID)
	assert.Equal(t, "Deep Chill", playlists[0].Name)
	assert.Equal(t, "https://open.spotify.com/playlist/pl1", playlists[0].ExternalURL)
	assert.Equal(t, "Spotify", playlists[0].Owner)
	assert.Equal(t, 120, playlists[0].TracksCount)
	require.Len(t, playlists[0].Images, 1)
	assert.Equal(t, "https://img/1.jpg", playlists[0].Images[0].URL)

	assert.Equal(t, "pl2", playlists[1].ID)
	assert.Equal(t, 0, playlists[1].TracksCount)
	assert.Empty(t, playlists[1].Owner)
}

func TestSearchPlaylists_UpstreamError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"status":429,"message":"rate limited"}}`))
	})

	_, err := client.SearchPlaylists(context.Background(), "tok", "q", "US")
	require.Error(t, err)

	var apiErr *spotify.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Contains(t, apiErr.Body, "rate limited")
}

func TestCategoryPlaylists(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/browse/categories/chill/playlists", r.URL.Path)
			q := r.URL.Query()
			require.Equal(t, "US", q.Get("country"))
			require.Equal(t, "30", q.Get("limit"))

			w.Write([]byte(searchBody))
		})

		playlists, err := client.CategoryPlaylists(context.Background(), "tok", "chill", "US")
		require.NoError(t, err)
		assert.Len(t, playlists, 2)
	})

	t.Run("upstream failure is swallowed", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		playlists, err := client.CategoryPlaylists(context.Background(), "tok", "chill", "US")
		assert.NoError(t, err)
		assert.Empty(t, playlists)
	})

	t.Run("unparsable body is swallowed", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>definitely not json</html>"))
		})

		playlists, err := client.CategoryPlaylists(context.Background(), "tok", "chill", "US")
		assert.NoError(t, err)
		assert.Empty(t, playlists)
	})

	t.Run("empty category id makes no call", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		playlists, err := client.CategoryPlaylists(context.Background(), "tok", "", "US")
		assert.NoError(t, err)
		assert.Empty(t, playlists)
	})
}

func TestPlaylistTracksSample(t *testing.T) {
	t.Run("normalizes tracks", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/playlists/pl1/tracks", r.URL.Path)
			q := r.URL.Query()
			require.Equal(t, "US", q.Get("market"))
			require.Equal(t, "15", q.Get("limit"))

			w.Write([]byte(`{
				"items": [
					{
						"track": {
							"id": "t1",
							"name": "Night Drive",
							"artists": [{"name": "A"}, {"name": "B"}],
							"external_urls": {"spotify": "https://open.spotify.com/track/t1"},
							"preview_url": "https://p.scdn.co/t1",
							"album": {"id": "al1", "name": "Nights", "images": []}
						}
					},
					{"track": null},
					{},
					{"track": {"name": "missing id"}},
					{
						"track": {
							"id": "t2",
							"name": "No Preview",
							"artists": [{"name": "C"}],
							"preview_url": null
						}
					}
				]
			}`))
		})

		tracks, err := client.PlaylistTracksSample(context.Background(), "tok", "pl1", "US", 15)
		require.NoError(t, err)
		require.Len(t, tracks, 2)

		assert.Equal(t, "t1", tracks[0].ID)
		assert.Equal(t, "A, B", tracks[0].Artists)
		require.NotNil(t, tracks[0].PreviewURL)
		assert.Equal(t, "https://p.scdn.co/t1", *tracks[0].PreviewURL)
		assert.Equal(t, "al1", tracks[0].Album.ID)

		assert.Equal(t, "t2", tracks[1].ID)
		assert.Equal(t, "C", tracks[1].Artists)
		assert.Nil(t, tracks[1].PreviewURL)
	})

	t.Run("upstream failure is swallowed", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		tracks, err := client.PlaylistTracksSample(context.Background(), "tok", "pl1", "US", 15)
		assert.NoError(t, err)
		assert.Empty(t, tracks)
	})
}
