package server

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/folyaev/FTGB/internal/phrases"
	"github.com/folyaev/FTGB/internal/storage"
)

// New builds the ops API: health, the current leaderboard and a few
// counters. When allowedOrigins is non-empty, cross-origin requests
// from anywhere else are refused.
func New(allowedOrigins []string, log *storage.UsageLog, store *phrases.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(allowedOrigins) > 0 {
		r.Use(func(ctx *gin.Context) {
			origin := ctx.Request.Header.Get("Origin")
			if origin == "" || slices.Contains(allowedOrigins, origin) {
				ctx.Next()
				return
			}
			ctx.String(http.StatusForbidden, "forbidden origin")
			ctx.Abort()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowCredentials: true,
			AllowHeaders:     []string{"Content-Type", "Origin"},
		}))
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/leaderboard", func(ctx *gin.Context) {
		records, err := log.ReadAll()
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "usage log unavailable"})
			return
		}
		entries := storage.BuildLeaderboard(records)
		out := make([]gin.H, 0, len(entries))
		for i, e := range entries {
			out = append(out, gin.H{"rank": i + 1, "username": e.Username, "score": e.Score})
		}
		ctx.JSON(http.StatusOK, gin.H{"leaderboard": out})
	})

	r.GET("/stats", func(ctx *gin.Context) {
		records, err := log.ReadAll()
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "usage log unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"phrases": store.Len(),
			"records": len(records),
		})
	})

	return r
}
