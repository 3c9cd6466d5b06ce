// Package repository declares the persistence boundary used by the service
// layer. The sqlite subpackage provides the concrete implementation.
package repository

import (
	"context"

	"github.com/sakif/quiztracker/internal/model"
)

// UserRepository persists user records and their quiz history.
//
// AppendTakenQuiz and RemoveTakenQuiz are atomic at the store: each is a
// single statement, so concurrent mutations of the same user's history
// cannot lose each other's writes.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	AppendTakenQuiz(ctx context.Context, userID string, entry model.TakenQuiz) error
	// RemoveTakenQuiz deletes every entry with the given quizId and returns
	// the remaining history.
	RemoveTakenQuiz(ctx context.Context, userID, quizID string) ([]model.TakenQuiz, error)
}
