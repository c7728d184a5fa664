package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisahay/pkg/i18n"
	"krishisahay/pkg/middleware"
)

func newEcho() *echo.Echo {
	h := New(i18n.Default())
	e := echo.New()
	e.Use(middleware.Language(i18n.English))
	e.GET("/languages", h.Languages)
	e.GET("/translate", h.Translate)
	e.GET("/translations", h.Translations)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestTranslate(t *testing.T) {
	e := newEcho()

	rec := get(e, "/translate?key=market&lang=te")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "మార్కెట్", body["text"])
	assert.Equal(t, "te", body["language"])

	rec = get(e, "/translate?key=unknownKey&lang=hi")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unknownKey", body["text"])

	assert.Equal(t, http.StatusBadRequest, get(e, "/translate").Code)
}

func TestTranslations(t *testing.T) {
	rec := get(newEcho(), "/translations?lang=ta")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Language string            `json:"language"`
		Strings  map[string]string `json:"strings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ta", body.Language)
	assert.Equal(t, "வானிலை", body.Strings["weather"])
	assert.Len(t, body.Strings, len(i18n.Default().Keys()))
}

func TestLanguages(t *testing.T) {
	rec := get(newEcho(), "/languages?lang=hi")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current":"hi"`)
	assert.Contains(t, rec.Body.String(), "हिंदी")
}
