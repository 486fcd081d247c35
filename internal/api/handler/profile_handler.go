package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castmate/castmate-client/internal/core/domain"
	"github.com/castmate/castmate-client/internal/core/ports"
)

type ProfileHandler struct {
	sessions ports.SessionService
	locator  ports.ProfileLocator
}

func NewProfileHandler(sessions ports.SessionService, locator ports.ProfileLocator) *ProfileHandler {
	return &ProfileHandler{sessions: sessions, locator: locator}
}

type myProfileResponse struct {
	User    *domain.UserSummary  `json:"user"`
	Profile *domain.ActorProfile `json:"profile"`
}

// Me returns the signed-in account.
//
// @Summary      Current user
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.UserSummary
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	user, err := h.sessions.FetchCurrentUser(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// MyProfile returns the actor profile of the signed-in account, or a null
// profile when none has been created yet.
//
// @Summary      Current actor profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  myProfileResponse
// @Failure      401  {object}  map[string]string
// @Router       /me/profile [get]
func (h *ProfileHandler) MyProfile(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	profile, user, err := h.locator.LocateActorProfile(c.Request().Context(), token, nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, myProfileResponse{User: user, Profile: profile})
}

// Get returns one actor profile.
//
// @Summary      Get actor profile
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "Actor ID"
// @Success      200  {object}  domain.ActorProfile
// @Failure      404  {object}  map[string]string
// @Router       /actors/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	profile, err := h.sessions.FetchActorProfile(c.Request().Context(), id, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update applies a partial update to an actor profile.
//
// @Summary      Update actor profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Actor ID"
// @Param        body  body      domain.ActorProfileUpdate  true  "Fields to change"
// @Success      200   {object}  domain.ActorProfile
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /actors/{id} [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var update domain.ActorProfileUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if update.IsEmpty() {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	profile, err := h.sessions.UpdateActorProfile(c.Request().Context(), id, token, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
