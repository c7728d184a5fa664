package controller

import "github.com/labstack/echo/v4"

type DashboardController interface {
	Weather(c echo.Context) error
	Market(c echo.Context) error
	Soil(c echo.Context) error
	SystemHealth(c echo.Context) error
	Alerts(c echo.Context) error
	Schemes(c echo.Context) error
	Marquee(c echo.Context) error
	ExportMarket(c echo.Context) error
}
