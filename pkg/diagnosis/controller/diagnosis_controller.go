package controller

import "github.com/labstack/echo/v4"

type DiagnosisController interface {
	Upload(c echo.Context) error
	Get(c echo.Context) error
}
