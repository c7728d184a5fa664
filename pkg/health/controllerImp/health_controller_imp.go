package controllerImp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// Readiness reports, per data source, whether its first poll has finished.
type Readiness interface {
	Ready() map[string]bool
}

type HealthCtrl struct {
	db    *gorm.DB
	feeds Readiness
}

func NewHealthCtrl(db *gorm.DB, feeds Readiness) *HealthCtrl {
	return &HealthCtrl{db: db, feeds: feeds}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

type feedsCheck struct {
	OK      bool            `json:"ok"`
	Sources map[string]bool `json:"sources"`
}

type healthReport struct {
	Status    check `json:"status"`
	UptimeSec int   `json:"uptime_sec"`
	Checks    struct {
		Database check      `json:"database"`
		Feeds    feedsCheck `json:"feeds"`
	} `json:"checks"`
	Time string `json:"time"`
}

func (h *HealthCtrl) pingDB(ctx context.Context) error {
	if h.db == nil {
		return errors.New("gorm db is nil")
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (h *HealthCtrl) feedsReport() feedsCheck {
	out := feedsCheck{OK: true, Sources: map[string]bool{}}
	if h.feeds == nil {
		return out
	}
	out.Sources = h.feeds.Ready()
	for _, ready := range out.Sources {
		out.OK = out.OK && ready
	}
	return out
}

// Health fails only on the database. Sources still loading are reported
// but do not make the service unhealthy.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	var r healthReport
	r.UptimeSec = int(time.Since(appStart).Seconds())
	r.Time = time.Now().Format(time.RFC3339)
	r.Checks.Feeds = h.feedsReport()
	r.Checks.Database = check{OK: true}
	if err := h.pingDB(ctx); err != nil {
		r.Checks.Database = check{Err: err.Error()}
	}
	r.Status.OK = r.Checks.Database.OK

	status := http.StatusOK
	if !r.Status.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, r)
}
