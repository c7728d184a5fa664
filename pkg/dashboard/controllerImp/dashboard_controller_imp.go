package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"krishisahay/pkg/dashboard/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardCtrl struct{ svc service.DashboardService }

func New(s service.DashboardService) *DashboardCtrl { return &DashboardCtrl{s} }

func (h *DashboardCtrl) Weather(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Weather())
}

func (h *DashboardCtrl) Market(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Market())
}

func (h *DashboardCtrl) Soil(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Soil())
}

func (h *DashboardCtrl) SystemHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SystemHealth())
}

func (h *DashboardCtrl) Alerts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Alerts())
}

func (h *DashboardCtrl) Schemes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Schemes())
}

func (h *DashboardCtrl) Marquee(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Marquee())
}

func (h *DashboardCtrl) ExportMarket(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.svc.ExportMarket(c.Request().Context(), &buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	name := fmt.Sprintf("market-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
