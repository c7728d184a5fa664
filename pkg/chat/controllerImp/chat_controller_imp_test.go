package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisahay/database"
	"krishisahay/entities"
	"krishisahay/pkg/chat/repositoryImp"
	"krishisahay/pkg/chat/service"
	"krishisahay/pkg/chat/serviceImp"
	"krishisahay/pkg/i18n"
	"krishisahay/pkg/middleware"
)

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	h := New(serviceImp.New(repositoryImp.New(db), serviceImp.Delays{}, nil))
	e := echo.New()
	g := e.Group("/api/v1/chat/:panel", middleware.Session(), middleware.Language(i18n.English))
	g.GET("/welcome", h.Welcome)
	g.GET("/suggestions", h.Suggestions)
	g.GET("/messages", h.History)
	g.POST("/messages", h.Send)
	return e
}

func do(e *echo.Echo, method, target, body, session string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSendAndHistory(t *testing.T) {
	e := newEcho(t)
	sid := "6f1c4d7e-2b1a-4f6e-9c2d-1a2b3c4d5e6f"

	rec := do(e, http.MethodPost, "/api/v1/chat/expert/messages?lang=hi", `{"text":"mandi rate kya hai"}`, sid)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var ex service.Exchange
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ex))
	assert.Contains(t, ex.Answer.Content, "बाजार विश्लेषण")

	rec = do(e, http.MethodPost, "/api/v1/chat/expert/messages", `{"text":"hello","language":"ta"}`, sid)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/chat/expert/messages", "", sid)
	require.Equal(t, http.StatusOK, rec.Code)
	var hist []entities.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	require.Len(t, hist, 4)
	assert.Equal(t, "ta", hist[3].Language)

	rec = do(e, http.MethodGet, "/api/v1/chat/verified/messages", "", sid)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSendErrors(t *testing.T) {
	e := newEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/chat/expert/messages", `{"text":"   "}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/chat/expert/messages", `{"text":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/chat/oracle/messages", `{"text":"hi"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWelcomeAndSuggestionsRoutes(t *testing.T) {
	e := newEcho(t)

	rec := do(e, http.MethodGet, "/api/v1/chat/expert/welcome?lang=te", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "హలో")

	rec = do(e, http.MethodGet, "/api/v1/chat/verified/suggestions", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pest Control")

	rec = do(e, http.MethodGet, "/api/v1/chat/nope/welcome", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
