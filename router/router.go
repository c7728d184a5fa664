package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"krishisahay/pkg/i18n"
	"krishisahay/pkg/logging"
	"krishisahay/pkg/middleware"
)

func New(
	e *echo.Echo,
	log *zap.Logger,
	defaultLang i18n.Language,
	dashCtrl interface {
		Weather(echo.Context) error
		Market(echo.Context) error
		Soil(echo.Context) error
		SystemHealth(echo.Context) error
		Alerts(echo.Context) error
		Schemes(echo.Context) error
		Marquee(echo.Context) error
		ExportMarket(echo.Context) error
	},
	i18nCtrl interface {
		Languages(echo.Context) error
		Translate(echo.Context) error
		Translations(echo.Context) error
	},
	chatCtrl interface {
		Welcome(echo.Context) error
		Suggestions(echo.Context) error
		History(echo.Context) error
		Send(echo.Context) error
	},
	diagCtrl interface {
		Upload(echo.Context) error
		Get(echo.Context) error
	},
	schemeCtrl interface{ Catalog(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(logging.RequestLogger(log))
	e.Use(middleware.Session())
	e.Use(middleware.Language(defaultLang))

	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/v1")

	// dashboard sources
	api.GET("/weather", dashCtrl.Weather)
	api.GET("/market", dashCtrl.Market)
	api.GET("/market/export.xlsx", dashCtrl.ExportMarket)
	api.GET("/soil", dashCtrl.Soil)
	api.GET("/system-health", dashCtrl.SystemHealth)
	api.GET("/alerts", dashCtrl.Alerts)
	api.GET("/schemes", dashCtrl.Schemes)
	api.GET("/schemes/catalog", schemeCtrl.Catalog)
	api.GET("/marquee", dashCtrl.Marquee)

	api.GET("/languages", i18nCtrl.Languages)
	api.GET("/translate", i18nCtrl.Translate)
	api.GET("/translations", i18nCtrl.Translations)

	chat := api.Group("/chat/:panel")
	chat.GET("/welcome", chatCtrl.Welcome)
	chat.GET("/suggestions", chatCtrl.Suggestions)
	chat.GET("/messages", chatCtrl.History)
	chat.POST("/messages", chatCtrl.Send)

	api.POST("/diagnosis", diagCtrl.Upload, echoMiddleware.BodyLimit("11M"))
	api.GET("/diagnosis/:id", diagCtrl.Get)
	return e
}
