package playlist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/moodmix/playlist-api/internal/app/services/playlist"
)

// Moods handles GET /api/moods, serving the static pickers for the UI.
func (h *PlaylistHandler) Moods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"moods":  app.MoodOptions(),
		"genres": app.GenreOptions(),
	})
}
