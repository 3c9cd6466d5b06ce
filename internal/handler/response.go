// Package handler is the HTTP layer: it parses requests, calls the
// services, and writes the response envelopes.
//
// Every response carries a "success" flag. The user projection sent to
// clients is built here and contains exactly id, name, email,
// takenQuizList, and (on sign-up/login) the token — never the password
// hash.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/quiztracker/internal/apperror"
	"github.com/sakif/quiztracker/internal/model"
)

// userPayload is the only projection of a User ever serialized to a
// client.
type userPayload struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	TakenQuizList []model.TakenQuiz `json:"takenQuizList"`
	Token         string            `json:"token,omitempty"`
}

// newUserPayload builds the public projection. token may be empty (profile
// reads don't re-issue one).
func newUserPayload(u *model.User, token string) *userPayload {
	list := u.TakenQuizList
	if list == nil {
		list = []model.TakenQuiz{}
	}
	return &userPayload{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		TakenQuizList: list,
		Token:         token,
	}
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *userPayload `json:"user"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type quizListResponse struct {
	Success       bool              `json:"success"`
	TakenQuizList []model.TakenQuiz `json:"takenQuizList"`
}

type okResponse struct {
	Success bool `json:"success"`
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError is the single boundary translating service errors to HTTP.
// Validation problems become a 400 with the field message, authentication
// failures a 401 with the fixed envelope, and everything else a generic
// 500 — internal detail never reaches the client.
//
// Not-found outcomes that the API reports inside a 200 envelope (login
// with an unknown email, profile with a vanished record) are handled
// explicitly by their handlers before reaching this function.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperror.ErrValidation):
			writeJSON(w, http.StatusBadRequest, messageResponse{Success: false, Message: appErr.Message})
			return
		case errors.Is(err, apperror.ErrAuthentication):
			writeJSON(w, http.StatusUnauthorized, messageResponse{Success: false, Message: "Authentication error!"})
			return
		case errors.Is(err, apperror.ErrNotFound):
			writeJSON(w, http.StatusNotFound, messageResponse{Success: false, Message: appErr.Message})
			return
		}
	}

	writeJSON(w, http.StatusInternalServerError, messageResponse{
		Success: false,
		Message: "Internal server error",
	})
}
