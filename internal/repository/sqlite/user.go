package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/quiztracker/internal/apperror"
	"github.com/sakif/quiztracker/internal/model"
	"github.com/sakif/quiztracker/internal/repository"
)

// compile-time check that *DB implements repository.UserRepository
var _ repository.UserRepository = (*DB)(nil)

// Create inserts a new user record, assigning the id and timestamps
// in-place. It does NOT check whether the email is already registered.
func (db *DB) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.ID = xid.New().String()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting user (email=%s): %w", user.Email, err)
	}

	if user.TakenQuizList == nil {
		user.TakenQuizList = []model.TakenQuiz{}
	}
	return nil
}

// GetByID retrieves a user and their quiz history by internal id.
// Returns apperror.ErrNotFound if no such user exists.
func (db *DB) GetByID(ctx context.Context, id string) (*model.User, error) {
	return db.getUser(ctx, `SELECT id, name, email, password_hash, created_at, updated_at
		 FROM users WHERE id = ?`, id)
}

// GetByEmail retrieves a user by email. When several accounts share the
// address, the oldest row wins — xid ids are time-ordered, so ordering by
// (created_at, id) makes the tie-break deterministic.
// Returns apperror.ErrNotFound if no account has that email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return db.getUser(ctx, `SELECT id, name, email, password_hash, created_at, updated_at
		 FROM users WHERE email = ? ORDER BY created_at, id LIMIT 1`, email)
}

func (db *DB) getUser(ctx context.Context, query, key string) (*model.User, error) {
	var u model.User

	err := db.conn.QueryRowContext(ctx, query, key).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", key)
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", key, err)
	}

	list, err := db.listTakenQuizzes(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.TakenQuizList = list

	return &u, nil
}

// AppendTakenQuiz records one quiz completion for the user. A single
// INSERT, so concurrent appends for the same user all land. Entries are
// not de-duplicated — taking the same quiz twice yields two rows.
func (db *DB) AppendTakenQuiz(ctx context.Context, userID string, entry model.TakenQuiz) error {
	result, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("sqlite: encoding quiz result: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO taken_quizzes (user_id, quiz_id, result) VALUES (?, ?, ?)`,
		userID, entry.QuizID, string(result),
	)
	if err != nil {
		return fmt.Errorf("sqlite: appending quiz %s for user %s: %w", entry.QuizID, userID, err)
	}
	return nil
}

// RemoveTakenQuiz deletes every history entry with the given quizId (not
// just the first) and returns what is left.
func (db *DB) RemoveTakenQuiz(ctx context.Context, userID, quizID string) ([]model.TakenQuiz, error) {
	_, err := db.conn.ExecContext(ctx,
		`DELETE FROM taken_quizzes WHERE user_id = ? AND quiz_id = ?`,
		userID, quizID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: removing quiz %s for user %s: %w", quizID, userID, err)
	}

	return db.listTakenQuizzes(ctx, userID)
}

// listTakenQuizzes returns the user's history in insertion order. The
// result column holds the original submission verbatim.
func (db *DB) listTakenQuizzes(ctx context.Context, userID string) ([]model.TakenQuiz, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT quiz_id, result FROM taken_quizzes WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing quizzes for user %s: %w", userID, err)
	}
	defer rows.Close()

	list := []model.TakenQuiz{}
	for rows.Next() {
		var quizID, result string
		if err := rows.Scan(&quizID, &result); err != nil {
			return nil, fmt.Errorf("sqlite: scanning quiz row: %w", err)
		}
		list = append(list, model.TakenQuiz{
			QuizID: quizID,
			Result: json.RawMessage(result),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating quiz rows: %w", err)
	}

	return list, nil
}
