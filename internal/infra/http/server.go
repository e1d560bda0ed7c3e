package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Server struct {
	*http.Server
}

func New(cfg Config, ph PlaylistHandler, dh DiagHandler) *Server {
	engine := gin.New()

	if !cfg.disableMiddleware {
		engine.Use(gin.Recovery())
		engine.Use(gin.Logger())
		engine.Use(otelgin.Middleware("mood-playlist-api"))
	}

	engine.GET("/api/playlist", ph.Aggregate)
	engine.GET("/api/moods", ph.Moods)
	engine.GET("/api/diag", dh.Check)

	internalServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{internalServer}
}
