package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castmate/castmate-client/internal/core/domain"
	"github.com/castmate/castmate-client/internal/core/ports"
)

type CastingHandler struct {
	sessions ports.SessionService
}

func NewCastingHandler(sessions ports.SessionService) *CastingHandler {
	return &CastingHandler{sessions: sessions}
}

// List returns the open castings.
//
// @Summary      List castings
// @Tags         castings
// @Produce      json
// @Success      200  {array}   domain.CastingSummary
// @Failure      503  {object}  map[string]string
// @Router       /castings [get]
func (h *CastingHandler) List(c echo.Context) error {
	castings, err := h.sessions.FetchCastings(c.Request().Context())
	if err != nil {
		return err
	}
	if castings == nil {
		castings = []domain.CastingSummary{}
	}
	return c.JSON(http.StatusOK, castings)
}

// Get returns one casting.
//
// @Summary      Get casting
// @Tags         castings
// @Produce      json
// @Param        id   path      string  true  "Casting ID"
// @Success      200  {object}  domain.CastingDetail
// @Failure      404  {object}  map[string]string
// @Router       /castings/{id} [get]
func (h *CastingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.sessions.FetchCastingDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}
