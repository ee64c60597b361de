package health

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"

	"readiness-api/internal/shared/server/respond"
)

// Status is the liveness payload.
type Status struct {
	OK            bool    `json:"ok"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Service reports process liveness.
type Service struct {
	started time.Time
	now     func() time.Time
}

// NewService constructs a health service whose uptime starts now.
func NewService() *Service {
	return newServiceAt(time.Now)
}

func newServiceAt(now func() time.Time) *Service {
	return &Service{started: now(), now: now}
}

// Status returns the current health payload. Uptime is rounded to
// milliseconds.
func (s *Service) Status() Status {
	up := s.now().Sub(s.started).Seconds()
	return Status{OK: true, UptimeSeconds: math.Round(up*1000) / 1000}
}

// RegisterRoutes serves GET /health on rg.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		respond.OK(c, s.Status())
	})
}
