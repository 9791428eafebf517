package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string    `json:"status"`
	Mongo     bool      `json:"mongo"`
	CheckedAt time.Time `json:"checkedAt"`
}

type HealthHandler struct {
	DB      Pinger
	Timeout time.Duration
	Logger  *zap.Logger
}

func NewHealthHandler(db Pinger, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{DB: db, Timeout: 2 * time.Second, Logger: logger}
}

// Health answers 200 while the process is up. The mongo flag is false until
// the first inquiry has opened a connection, or when the last ping failed.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	status := HealthStatus{Status: "ok", CheckedAt: time.Now().UTC()}
	if h.DB != nil {
		if err := h.DB.Ping(ctx); err != nil {
			getLogger(c, h.Logger).Debug("Mongo ping failed", zap.Error(err))
		} else {
			status.Mongo = true
		}
	}
	c.JSON(http.StatusOK, status)
}
