package server

import (
	"github.com/gin-gonic/gin"
)

type PlaylistHandler interface {
	Aggregate(ctx *gin.Context)
	Moods(ctx *gin.Context)
}

type DiagHandler interface {
	Check(ctx *gin.Context)
}
