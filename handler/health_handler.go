package handler

import (
	"context"
	"log/slog"
	"time"

	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthPingTimeout = 2 * time.Second

func HealthHandler(c *gin.Context, store Pinger) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	cpuPercent := utils.GetCPUUsage()
	if err := store.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "store ping failed", "error", err)
		utils.ServiceUnavailable(c, "store unavailable", gin.H{
			"store":      "down",
			"cpuPercent": cpuPercent,
		})
		return
	}

	utils.Success(c, "ok", gin.H{
		"store":      "up",
		"cpuPercent": cpuPercent,
	})
}
