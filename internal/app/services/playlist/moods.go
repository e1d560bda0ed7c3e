package playlist

// Option is a selectable mood or genre exposed to the picker UI.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var moodOptions = []Option{
	{Key: "calm", Label: "Calm"},
	{Key: "happy", Label: "Happy"},
	{Key: "sad", Label: "Sad"},
	{Key: "energetic", Label: "Energetic"},
	{Key: "focused", Label: "Focused"},
	{Key: "romantic", Label: "Romantic"},
}

var genreOptions = []Option{
	{Key: "afrobeats", Label: "Afrobeats"},
	{Key: "rnb", Label: "R&B"},
	{Key: "reggae", Label: "Reggae"},
	{Key: "funk", Label: "Funk"},
	{Key: "pop", Label: "Pop"},
	{Key: "hiphop", Label: "Hip-Hop"},
	{Key: "edm", Label: "Electronic"},
	{Key: "indie", Label: "Indie/Alt"},
	{Key: "rock", Label: "Rock"},
	{Key: "classical", Label: "Classical"},
	{Key: "latin", Label: "Latin/Reggaeton"},
	{Key: "lofi", Label: "Lo-Fi/Chill"},
}

func MoodOptions() []Option {
	return moodOptions
}

func GenreOptions() []Option {
	return genreOptions
}
