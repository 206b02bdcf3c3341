package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/db/repository"
	httperr "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the /auth endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "auth_http").Logger(),
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// HandleRegister serves POST /auth/register.
func (h *HTTPHandlers) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperr.RespondMethodNotAllowed(w)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w, "invalid JSON payload")
		return
	}

	user, token, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrPasswordTooShort):
			httperr.RespondBadRequest(w, err.Error())
		case errors.Is(err, ErrEmailTaken):
			httperr.RespondUnprocessable(w, err.Error())
		default:
			h.logger.Error().Err(err).Msg("registration failed")
			httperr.RespondInternalError(w)
		}
		return
	}

	h.respondWithToken(w, user, token)
}

// HandleLogin serves POST /auth/login.
func (h *HTTPHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperr.RespondMethodNotAllowed(w)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w, "invalid JSON payload")
		return
	}

	user, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httperr.RespondUnauthorized(w, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		httperr.RespondInternalError(w)
		return
	}

	h.respondWithToken(w, user, token)
}

func (h *HTTPHandlers) respondWithToken(w http.ResponseWriter, user repository.User, token string) {
	httperr.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    userPayload{ID: user.ID.String(), Email: user.Email},
	})
}
