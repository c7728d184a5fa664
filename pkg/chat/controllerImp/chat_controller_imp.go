package controllerImp

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"krishisahay/entities"
	"krishisahay/pkg/chat"
	"krishisahay/pkg/chat/service"
	"krishisahay/pkg/i18n"
	"krishisahay/pkg/middleware"
)

type ChatCtrl struct{ svc service.ChatService }

func New(s service.ChatService) *ChatCtrl { return &ChatCtrl{s} }

type sendReq struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (h *ChatCtrl) Welcome(c echo.Context) error {
	p, err := chat.ParsePanel(c.Param("panel"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	msg, err := h.svc.Welcome(p, middleware.Lang(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *ChatCtrl) Suggestions(c echo.Context) error {
	p, err := chat.ParsePanel(c.Param("panel"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	out, err := h.svc.Suggestions(p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ChatCtrl) History(c echo.Context) error {
	p, err := chat.ParsePanel(c.Param("panel"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	out, err := h.svc.History(c.Request().Context(), middleware.SessionID(c), p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.ChatMessage{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ChatCtrl) Send(c echo.Context) error {
	p, err := chat.ParsePanel(c.Param("panel"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	var req sendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	lang := middleware.Lang(c)
	if l, ok := i18n.ParseLanguage(req.Language); ok {
		lang = l
	}

	out, err := h.svc.Send(c.Request().Context(), middleware.SessionID(c), p, req.Text, lang)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, out)
	case errors.Is(err, chat.ErrEmptyMessage):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusRequestTimeout, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
