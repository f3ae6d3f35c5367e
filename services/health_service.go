package services

import (
	"context"
	"plantstore_server/database"
	"time"

	"github.com/MonkyMars/gecho"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type HealthStatus struct {
	Uptime         float64   `json:"uptime"` // in seconds
	CurrentTime    time.Time `json:"current_time"`
	DatabaseOK     bool      `json:"database_ok"`
	CacheOK        bool      `json:"cache_ok"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}

type HealthService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewHealthService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *HealthService {
	return &HealthService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// Status pings the database and Redis and reports both.
func (hs *HealthService) Status(ctx context.Context) *HealthStatus {
	start := time.Now()

	status := &HealthStatus{
		Uptime:      time.Since(uptimeStart).Seconds(),
		CurrentTime: time.Now(),
		DatabaseOK:  true,
		CacheOK:     true,
	}

	if err := hs.db.Health(); err != nil {
		hs.logger.Error("Database health check failed", gecho.Field("error", err))
		status.DatabaseOK = false
	}

	if err := hs.cacheService.Health(ctx); err != nil {
		hs.logger.Error("Cache health check failed", gecho.Field("error", err))
		status.CacheOK = false
	}

	status.ResponseTimeMs = time.Since(start).Milliseconds()
	return status
}
