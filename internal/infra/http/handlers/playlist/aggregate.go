package playlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	app "github.com/moodmix/playlist-api/internal/app/services/playlist"
)

// Aggregate handles GET /api/playlist. Every failure is converted into a
// {ok:false, error} envelope; nothing propagates past this boundary.
func (h *PlaylistHandler) Aggregate(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "PlaylistHandler.Aggregate")
	defer span.End()

	params := app.Params{
		Mood:          c.Query("mood"),
		Genre:         c.Query("genre"),
		Market:        c.Query("country"),
		Limit:         intQuery(c, "limit", app.DefaultLimit),
		MinTracks:     intQuery(c, "minTracks", 0),
		IncludeTracks: c.Query("tracks") == "true",
	}

	result, err := h.playlistService.Aggregate(ctx, params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, app.ErrSearch) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"query": result.Query,
		"count": result.Count,
		"items": result.Items,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
