package spotify

import (
	"encoding/json"
	"strings"

	"github.com/moodmix/playlist-api/internal/app/services/playlist"
)

// The upstream responses are treated as untrusted free-form JSON: every
// item is decoded individually so one malformed entry is skipped instead
// of failing the whole page, and nested objects are pointers so missing
// or null intermediates decode cleanly.

type searchResponse struct {
	Playlists wirePage `json:"playlists"`
}

type wirePage struct {
	Items []json.RawMessage `json:"items"`
}

type wirePlaylist struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	ExternalURLs map[string]string `json:"external_urls"`
	Images       []wireImage       `json:"images"`
	Owner        *wireOwner        `json:"owner"`
	Tracks       *wireTracksRef    `json:"tracks"`
}

type wireImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type wireOwner struct {
	DisplayName string `json:"display_name"`
}

type wireTracksRef struct {
	Total int `json:"total"`
}

type tracksResponse struct {
	Items []json.RawMessage `json:"items"`
}

type wireTrackEntry struct {
	Track *wireTrack `json:"track"`
}

type wireTrack struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Artists      []wireArtist      `json:"artists"`
	ExternalURLs map[string]string `json:"external_urls"`
	PreviewURL   *string           `json:"preview_url"`
	Album        *wireAlbum        `json:"album"`
}

type wireArtist struct {
	Name string `json:"name"`
}

type wireAlbum struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Images []wireImage `json:"images"`
}

// normalizePlaylists maps raw playlist items into the canonical shape,
// dropping anything that is not an object with a string id.
func normalizePlaylists(items []json.RawMessage) []playlist.Playlist {
	out := make([]playlist.Playlist, 0, len(items))
	for _, item := range items {
		var p wirePlaylist
		if err := json.Unmarshal(item, &p); err != nil || p.ID == "" {
			continue
		}
		out = append(out, p.toDomain())
	}
	return out
}

func (p wirePlaylist) toDomain() playlist.Playlist {
	normalized := playlist.Playlist{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ExternalURL: p.ExternalURLs["spotify"],
		Images:      normalizeImages(p.Images),
	}
	if p.Owner != nil {
		normalized.Owner = p.Owner.DisplayName
	}
	if p.Tracks != nil {
		normalized.TracksCount = p.Tracks.Total
	}
	return normalized
}

// normalizeTracks unwraps the items[].track envelope, dropping entries
// without an id, and flattens artist names into one display string.
func normalizeTracks(items []json.RawMessage) []playlist.Track {
	out := make([]playlist.Track, 0, len(items))
	for _, item := range items {
		var entry wireTrackEntry
		if err := json.Unmarshal(item, &entry); err != nil || entry.Track == nil || entry.Track.ID == "" {
			continue
		}
		out = append(out, entry.Track.toDomain())
	}
	return out
}

func (t wireTrack) toDomain() playlist.Track {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}

	normalized := playlist.Track{
		ID:          t.ID,
		Name:        t.Name,
		Artists:     strings.Join(names, ", "),
		ExternalURL: t.ExternalURLs["spotify"],
		PreviewURL:  t.PreviewURL,
	}
	if t.Album != nil {
		normalized.Album = playlist.Album{
			ID:     t.Album.ID,
			Name:   t.Album.Name,
			Images: normalizeImages(t.Album.Images),
		}
	}
	return normalized
}

func normalizeImages(images []wireImage) []playlist.Image {
	out := make([]playlist.Image, 0, len(images))
	for _, img := range images {
		out = append(out, playlist.Image{URL: img.URL, Width: img.Width, Height: img.Height})
	}
	return out
}
