package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/quiztracker/internal/apperror"
	"github.com/sakif/quiztracker/internal/service"
)

// AuthHandler serves the unauthenticated credential endpoints: sign-up and
// login.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// HandleSignUp registers a new account.
//
// POST /sign-up
// Body: {"user": {"name": "...", "email": "...", "password": "..."}}
// Response: {"success": true, "user": {id, name, email, takenQuizList, token}}
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	result, err := h.auth.SignUp(r.Context(), req.User.Name, req.User.Email, req.User.Password)
	if err != nil {
		h.logger.Error("sign-up failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Success: true,
		User:    newUserPayload(result.User, result.Token),
	})
}

// HandleLogin authenticates an email/password pair.
//
// POST /login
// Body: {"email": "...", "password": "..."}
//
// An unknown email is NOT an authentication failure: it answers 200 with
// {"success": false, "message": "User not found!"}. A wrong password
// answers 401 with the generic authentication envelope.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "User not found!"})
			return
		}
		if !errors.Is(err, apperror.ErrAuthentication) {
			h.logger.Error("login failed", slog.String("error", err.Error()))
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Success: true,
		User:    newUserPayload(result.User, result.Token),
	})
}
