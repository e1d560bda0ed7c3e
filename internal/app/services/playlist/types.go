package playlist

// Playlist is the canonical shape the rest of the service works with,
// normalized from the raw Spotify responses. Every Playlist in a result set
// has a non-empty ID; entries without one are dropped during normalization.
type Playlist struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ExternalURL string  `json:"external_url,omitempty"`
	Images      []Image `json:"images"`
	Owner       string  `json:"owner,omitempty"`
	TracksCount int     `json:"tracks_count"`
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Track is a sampled playlist entry. PreviewURL is null for tracks Spotify
// exposes no preview for, and the frontend relies on that distinction.
type Track struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Artists     string  `json:"artists"`
	ExternalURL string  `json:"external_url,omitempty"`
	PreviewURL  *string `json:"preview_url"`
	Album       Album   `json:"album"`
}

type Album struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name,omitempty"`
	Images []Image `json:"images,omitempty"`
}

// PlaylistWithSamples is the item shape returned when track sampling is
// requested. SampleTracks is always present, possibly empty.
type PlaylistWithSamples struct {
	Playlist
	SampleTracks []Track `json:"sample_tracks"`
}
