package controllerImp

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"krishisahay/pkg/diagnosis"
	"krishisahay/pkg/diagnosis/service"
)

type DiagnosisCtrl struct{ svc service.DiagnosisService }

func New(s service.DiagnosisService) *DiagnosisCtrl { return &DiagnosisCtrl{s} }

// Upload expects the photo in the multipart field "image".
func (h *DiagnosisCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing image field"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, diagnosis.MaxUploadBytes+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	out, err := h.svc.Diagnose(c.Request().Context(), fh.Filename, fh.Header.Get(echo.HeaderContentType), data)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, out)
	case errors.Is(err, diagnosis.ErrEmptyUpload), errors.Is(err, diagnosis.ErrNotImage):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, diagnosis.ErrTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (h *DiagnosisCtrl) Get(c echo.Context) error {
	out, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, diagnosis.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
