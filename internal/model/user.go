// Package model defines the data structures shared across the application.
package model

import "time"

// User represents a registered account and its quiz history.
//
// PasswordHash holds the bcrypt digest of the user's password and is tagged
// `json:"-"` so it can never appear in a serialized response. Clients only
// ever see the projection built by the handler layer (id, name, email,
// takenQuizList, and a token on sign-up/login).
//
// Email is the lookup key for login. It is deliberately NOT unique — the
// store allows multiple accounts with the same address and login resolves
// to the oldest one (see repository/sqlite).
type User struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	PasswordHash  string      `json:"-"`
	TakenQuizList []TakenQuiz `json:"takenQuizList"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
