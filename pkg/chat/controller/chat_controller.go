package controller

import "github.com/labstack/echo/v4"

type ChatController interface {
	Welcome(c echo.Context) error
	Suggestions(c echo.Context) error
	History(c echo.Context) error
	Send(c echo.Context) error
}
