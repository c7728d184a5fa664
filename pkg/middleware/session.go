package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "KS_SESSION"
	SessionHeader = "X-Session-Id"
	sessionKey    = "session"
)

// Session gives every client a stable chat session id. The id comes from the
// KS_SESSION cookie, then the X-Session-Id header, and is minted otherwise.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				sid = ck.Value
			}
			if sid == "" {
				sid = c.Request().Header.Get(SessionHeader)
			}
			if _, err := uuid.Parse(sid); err != nil {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{Name: SessionCookie, Value: sid, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
			}
			c.Set(sessionKey, sid)
			return next(c)
		}
	}
}

// SessionID returns the id stored by Session, or "" outside it.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionKey).(string)
	return sid
}
