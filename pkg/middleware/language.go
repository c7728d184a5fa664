package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"krishisahay/pkg/i18n"
)

const (
	LangCookie = "KS_LANG"
	langKey    = "lang"
)

// Language resolves the request language from ?lang=, the KS_LANG cookie,
// Accept-Language and finally def. A valid ?lang= is remembered in the
// cookie.
func Language(def i18n.Language) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang, ok := i18n.ParseLanguage(c.QueryParam("lang"))
			if ok {
				c.SetCookie(&http.Cookie{Name: LangCookie, Value: string(lang), Path: "/"})
			}
			if !ok {
				if ck, err := c.Cookie(LangCookie); err == nil {
					lang, ok = i18n.ParseLanguage(ck.Value)
				}
			}
			if !ok {
				lang, ok = fromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}
			if !ok {
				lang = def
			}
			c.Set(langKey, lang)
			return next(c)
		}
	}
}

// Lang returns the language stored by Language, or the default outside it.
func Lang(c echo.Context) i18n.Language {
	if lang, ok := c.Get(langKey).(i18n.Language); ok {
		return lang
	}
	return i18n.DefaultLanguage
}

// fromAcceptLanguage picks the first supported tag in header order. Quality
// weights are ignored.
func fromAcceptLanguage(h string) (i18n.Language, bool) {
	for _, part := range strings.Split(h, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if lang, ok := i18n.ParseLanguage(tag); ok {
			return lang, true
		}
	}
	return "", false
}
