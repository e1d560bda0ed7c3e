package diag

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Check handles GET /api/diag. It always responds 200; the body reports
// what is wrong rather than the status code.
func (h *DiagHandler) Check(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "DiagHandler.Check")
	defer span.End()

	id := cleanCredential(h.clientID)
	secret := cleanCredential(h.clientSecret)

	tokenOK := false
	var tokenError any
	if _, err := h.tokens.Exchange(ctx); err != nil {
		tokenError = err.Error()
	} else {
		tokenOK = true
	}

	c.JSON(http.StatusOK, gin.H{
		"env":        h.env,
		"idLen":      len(id),
		"secretLen":  len(secret),
		"idPrefix":   prefix(id, 6),
		"tokenOk":    tokenOK,
		"tokenError": tokenError,
	})
}

// cleanCredential strips the whitespace and stray quotes that tend to
// sneak into credentials pasted into env files.
func cleanCredential(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.ReplaceAll(s, "\n", "")
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
