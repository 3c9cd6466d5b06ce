package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/quiztracker/internal/apperror"
	"github.com/sakif/quiztracker/internal/auth"
	"github.com/sakif/quiztracker/internal/model"
	"github.com/sakif/quiztracker/internal/service"
)

// QuizHandler serves the authenticated profile and quiz-history endpoints.
// All routes sit behind auth.RequireAuth, which resolves the caller's
// userID into the request context.
type QuizHandler struct {
	quizzes *service.QuizService
	logger  *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(quizzes *service.QuizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, logger: logger}
}

// HandleProfile returns the caller's public profile.
//
// GET /
// Response: {"success": true, "user": {id, name, email, takenQuizList}}
// or, when the backing record is gone, a 200 envelope with
// {"success": false, "message": "User not found!"}.
func (h *QuizHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Authentication())
		return
	}

	user, err := h.quizzes.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			writeJSON(w, http.StatusOK, messageResponse{Success: false, Message: "User not found!"})
			return
		}
		h.logger.Error("profile lookup failed",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Success: true,
		User:    newUserPayload(user, ""),
	})
}

// HandleAddQuiz records one quiz completion for the caller.
//
// POST /
// Body: {"takenQuiz": {"quizId": "...", ...}} — everything beyond quizId
// is opaque and stored verbatim.
// Response: {"success": true}
func (h *QuizHandler) HandleAddQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Authentication())
		return
	}

	var req struct {
		TakenQuiz model.TakenQuiz `json:"takenQuiz"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	if err := h.quizzes.AddTakenQuiz(r.Context(), userID, req.TakenQuiz); err != nil {
		if !errors.Is(err, apperror.ErrValidation) {
			h.logger.Error("recording quiz failed",
				slog.String("userID", userID),
				slog.String("error", err.Error()),
			)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{Success: true})
}

// HandleRemoveQuiz deletes every history entry for the given quiz id and
// returns what remains.
//
// DELETE /quiz/{id}
// Response: {"success": true, "takenQuizList": [...]}
func (h *QuizHandler) HandleRemoveQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Authentication())
		return
	}

	quizID := r.PathValue("id")

	list, err := h.quizzes.RemoveTakenQuiz(r.Context(), userID, quizID)
	if err != nil {
		if !errors.Is(err, apperror.ErrValidation) {
			h.logger.Error("removing quiz failed",
				slog.String("userID", userID),
				slog.String("quizID", quizID),
				slog.String("error", err.Error()),
			)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quizListResponse{Success: true, TakenQuizList: list})
}
