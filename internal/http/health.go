package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookworm-app/bookworm/internal/database"
)

// HealthResponse reports service liveness and the state of each dependency.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db        *database.Database
	version   string
	startedAt time.Time
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:        db,
		version:   version,
		startedAt: time.Now(),
	}
}

// Status responds 200 while every dependency check passes, 503 otherwise.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	checks := map[string]string{
		"database": h.checkDatabase(),
	}

	status := "healthy"
	code := http.StatusOK
	for _, result := range checks {
		if result != "ok" && result != "not configured" {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
		Version: h.version,
		Checks:  checks,
	})
}

func (h *HealthController) checkDatabase() string {
	if h.db == nil {
		return "not configured"
	}

	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return "error: " + err.Error()
	}
	if err := sqlDB.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}
