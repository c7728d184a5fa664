package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"krishisahay/pkg/scheme/repository"
)

type SchemeCtrl struct{ repo repository.SchemeRepository }

func New(repo repository.SchemeRepository) *SchemeCtrl { return &SchemeCtrl{repo} }

func (h *SchemeCtrl) Catalog(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	out, err := h.repo.List(c.Request().Context(), category)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
