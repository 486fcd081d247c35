package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/castmate/castmate-client/internal/core/domain"
	"github.com/castmate/castmate-client/internal/core/ports"
	"github.com/castmate/castmate-client/internal/infrastructure/auth"
)

type SessionHandler struct {
	sessions ports.SessionService
	store    ports.TokenStore
	log      zerolog.Logger
}

func NewSessionHandler(sessions ports.SessionService, store ports.TokenStore, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, store: store, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	AccessToken string              `json:"access_token"`
	User        *domain.UserSummary `json:"user,omitempty"`
}

type sessionInfoResponse struct {
	Authenticated bool            `json:"authenticated"`
	Claims        *auth.TokenInfo `json:"claims"`
	Expired       bool            `json:"expired"`
}

// Login exchanges credentials for a session and stores the token.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	session, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return h.persist(c, http.StatusOK, session)
}

// SignupActor registers an actor from the signup wizard draft.
//
// @Summary      Actor signup
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ActorSignUpDraft  true  "Actor signup draft"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /session/signup/actor [post]
func (h *SessionHandler) SignupActor(c echo.Context) error {
	var draft domain.ActorSignUpDraft
	if err := bindValid(c, &draft); err != nil {
		return err
	}

	session, err := h.sessions.SignupActor(c.Request().Context(), draft)
	if err != nil {
		return err
	}
	return h.persist(c, http.StatusCreated, session)
}

// SignupAgency registers an agency from the signup wizard draft.
//
// @Summary      Agency signup
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      domain.AgencySignUpDraft  true  "Agency signup draft"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /session/signup/agency [post]
func (h *SessionHandler) SignupAgency(c echo.Context) error {
	var draft domain.AgencySignUpDraft
	if err := bindValid(c, &draft); err != nil {
		return err
	}

	session, err := h.sessions.SignupAgency(c.Request().Context(), draft)
	if err != nil {
		return err
	}
	return h.persist(c, http.StatusCreated, session)
}

// Info describes the current token. Claims are null for opaque tokens.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionInfoResponse
// @Failure      401  {object}  map[string]string
// @Router       /session [get]
func (h *SessionHandler) Info(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	resp := sessionInfoResponse{Authenticated: true}
	info, err := auth.Inspect(token)
	switch {
	case err == nil:
		resp.Claims = &info
		resp.Expired = info.Expired(time.Now())
	case errors.Is(err, auth.ErrOpaqueToken):
		h.log.Debug().Msg("access token is opaque")
	default:
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout forgets the stored token.
//
// @Summary      Logout
// @Tags         session
// @Success      204
// @Router       /session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.store.Clear(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) persist(c echo.Context, status int, session *domain.Session) error {
	if err := h.store.Set(c.Request().Context(), session.AccessToken); err != nil {
		return err
	}
	return c.JSON(status, sessionResponse{AccessToken: session.AccessToken, User: session.User})
}
