package playlist

import "strings"

type moodProfile struct {
	keywords   []string
	categoryID string
}

// moodTable maps the closed set of mood keys to search keywords and an
// optional Spotify browse category used as a fallback when search comes
// back empty. Read-only, never mutated at runtime.
var moodTable = map[string]moodProfile{
	"calm":      {keywords: []string{"calm", "chill", "acoustic", "relax"}, categoryID: "chill"},
	"happy":     {keywords: []string{"happy", "feel good", "good vibes"}, categoryID: "mood"},
	"sad":       {keywords: []string{"sad", "melancholy", "rainy day"}, categoryID: "mood"},
	"energetic": {keywords: []string{"workout", "power", "hype", "energy"}, categoryID: "workout"},
	"focused":   {keywords: []string{"focus", "deep focus", "lofi", "study"}, categoryID: "focus"},
	"romantic":  {keywords: []string{"romantic", "love", "date night"}, categoryID: "mood"},
}

// buildSearchQuery assembles the weighted search string for a mood/genre
// pair: the genre first, then the mood keywords, then "playlist" and "mix",
// deduplicated in first-seen order. When neither input contributes a term
// the literal "mood mix" is returned so the search endpoint never receives
// a trivial query.
func buildSearchQuery(mood, genre string) string {
	var terms []string
	if g := strings.ToLower(genre); g != "" {
		terms = append(terms, g)
	}
	if profile, ok := moodTable[strings.ToLower(mood)]; ok {
		terms = append(terms, profile.keywords...)
	}
	if len(terms) == 0 {
		return "mood mix"
	}
	terms = append(terms, "playlist", "mix")

	seen := make(map[string]struct{}, len(terms))
	deduped := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		deduped = append(deduped, t)
	}

	return strings.Join(deduped, " ")
}

// moodCategoryID resolves a mood key to its browse category, or "" when the
// mood is unknown or has no category mapped.
func moodCategoryID(mood string) string {
	return moodTable[strings.ToLower(mood)].categoryID
}
