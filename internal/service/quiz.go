package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/quiztracker/internal/apperror"
	"github.com/sakif/quiztracker/internal/model"
	"github.com/sakif/quiztracker/internal/repository"
)

// QuizService mutates and reads a user's quiz history. Every method takes
// a userID that was resolved by the identity middleware — client-supplied
// ids are never accepted here.
type QuizService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewQuizService creates a QuizService.
func NewQuizService(users repository.UserRepository, logger *slog.Logger) *QuizService {
	return &QuizService{users: users, logger: logger}
}

// GetProfile returns the user record for the authenticated id, or
// apperror.ErrNotFound when the backing record is missing.
func (s *QuizService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service/quiz: fetching user %s: %w", userID, err)
	}
	return user, nil
}

// AddTakenQuiz appends one completion entry to the user's history. Entries
// are not de-duplicated: recording the same quizId twice keeps both.
//
// A userID whose record is gone is an internal inconsistency — the token
// was valid, the row isn't there — so the error is deliberately NOT
// ErrNotFound and surfaces as a generic failure.
func (s *QuizService) AddTakenQuiz(ctx context.Context, userID string, entry model.TakenQuiz) error {
	if entry.QuizID == "" {
		return apperror.ValidationFailed("quizId", "takenQuiz.quizId is required")
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("service/quiz: no backing record for authenticated user %s: %v", userID, err)
	}

	if err := s.users.AppendTakenQuiz(ctx, userID, entry); err != nil {
		return fmt.Errorf("service/quiz: appending quiz %s for %s: %w", entry.QuizID, userID, err)
	}

	s.logger.Info("quiz recorded",
		slog.String("userID", userID),
		slog.String("quizID", entry.QuizID),
	)
	return nil
}

// RemoveTakenQuiz deletes every history entry matching quizID and returns
// the remaining list.
func (s *QuizService) RemoveTakenQuiz(ctx context.Context, userID, quizID string) ([]model.TakenQuiz, error) {
	if quizID == "" {
		return nil, apperror.ValidationFailed("id", "quiz id is required")
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service/quiz: no backing record for authenticated user %s: %v", userID, err)
	}

	list, err := s.users.RemoveTakenQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("service/quiz: removing quiz %s for %s: %w", quizID, userID, err)
	}
	return list, nil
}
