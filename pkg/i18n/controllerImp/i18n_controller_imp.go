package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"krishisahay/pkg/i18n"
	"krishisahay/pkg/middleware"
)

type I18nCtrl struct{ tr *i18n.Translator }

func New(tr *i18n.Translator) *I18nCtrl { return &I18nCtrl{tr} }

func (h *I18nCtrl) Languages(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"current":   middleware.Lang(c),
		"languages": i18n.Supported(),
	})
}

// Translate never fails on an unknown key; the key comes back as the text.
func (h *I18nCtrl) Translate(c echo.Context) error {
	key := strings.TrimSpace(c.QueryParam("key"))
	if key == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "key is required"})
	}
	lang := middleware.Lang(c)
	return c.JSON(http.StatusOK, map[string]string{
		"key":      key,
		"language": string(lang),
		"text":     h.tr.Translate(key, lang),
	})
}

func (h *I18nCtrl) Translations(c echo.Context) error {
	lang := middleware.Lang(c)
	return c.JSON(http.StatusOK, map[string]any{
		"language": lang,
		"strings":  h.tr.Bundle(lang),
	})
}
