package db

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// StoreStats represents store connection statistics.
type StoreStats struct {
	OpenConns  int    `json:"open_conns"`
	InUse      int    `json:"in_use"`
	Idle       int    `json:"idle"`
	WaitCount  int64  `json:"wait_count"`
	WaitTime   string `json:"wait_time"`
	Healthy    bool   `json:"healthy"`
}

// GetStoreStats returns connection statistics for the store handle.
func GetStoreStats(d *sql.DB) *StoreStats {
	s := d.Stats()
	return &StoreStats{
		OpenConns: s.OpenConnections,
		InUse:     s.InUse,
		Idle:      s.Idle,
		WaitCount: s.WaitCount,
		WaitTime:  s.WaitDuration.String(),
		Healthy:   true,
	}
}

// HealthHandler returns a handler for the store health check endpoint.
func HealthHandler(d *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		err := d.PingContext(ctx)
		stats := GetStoreStats(d)

		if err != nil {
			stats.Healthy = false
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
				"store":  stats,
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"store":  stats,
		})
	}
}
