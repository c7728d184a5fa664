package controller

import "github.com/labstack/echo/v4"

type SchemeController interface {
	Catalog(c echo.Context) error
}
