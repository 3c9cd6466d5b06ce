package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"

	"github.com/sakif/quiztracker/internal/auth"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := New(Config{
		Port:      0,
		DBPath:    ":memory:",
		JWTSecret: "test-secret-at-least-16-chars!!",
		TokenTTL:  24 * time.Hour,
	}, logger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { srv.Close() })
	return srv
}

// signUp registers a user through the API and returns the issued token.
func signUp(t *testing.T, srv *Server, name, email, password string) string {
	t.Helper()

	result := apitest.Handler(srv.Handler()).
		Post("/sign-up").
		JSON(`{"user":{"name":"` + name + `","email":"` + email + `","password":"` + password + `"}}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Present(`$.user.id`)).
		Assert(jsonpath.Present(`$.user.token`)).
		Assert(jsonpath.Len(`$.user.takenQuizList`, 0)).
		End()

	var body struct {
		User struct {
			Token string `json:"token"`
		} `json:"user"`
	}
	if err := json.NewDecoder(result.Response.Body).Decode(&body); err != nil {
		t.Fatalf("decoding sign-up response: %v", err)
	}
	if body.User.Token == "" {
		t.Fatal("sign-up returned an empty token")
	}
	return body.User.Token
}

// TestQuizLifecycle walks the whole flow: sign-up, record a quiz, read the
// profile, delete the quiz.
func TestQuizLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "A", "a@x.com", "p1")

	apitest.Handler(srv.Handler()).
		Post("/").
		Header("Authorization", token).
		JSON(`{"takenQuiz":{"quizId":"q1","score":5}}`).
		Expect(t).
		Status(http.StatusOK).
		Body(`{"success":true}`).
		End()

	apitest.Handler(srv.Handler()).
		Get("/").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.user.name`, "A")).
		Assert(jsonpath.Equal(`$.user.email`, "a@x.com")).
		Assert(jsonpath.Len(`$.user.takenQuizList`, 1)).
		Assert(jsonpath.Equal(`$.user.takenQuizList[0].quizId`, "q1")).
		Assert(jsonpath.Equal(`$.user.takenQuizList[0].score`, float64(5))).
		End()

	apitest.Handler(srv.Handler()).
		Delete("/quiz/q1").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Len(`$.takenQuizList`, 0)).
		End()
}

func TestProfile_NeverContainsPasswordHash(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "A", "a@x.com", "p1")

	apitest.Handler(srv.Handler()).
		Get("/").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.NotPresent(`$.user.passwordHash`)).
		Assert(jsonpath.NotPresent(`$.user.password`)).
		End()
}

func TestLogin_Outcomes(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "A", "a@x.com", "p1")

	// correct credentials
	apitest.Handler(srv.Handler()).
		Post("/login").
		JSON(`{"email":"a@x.com","password":"p1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Present(`$.user.token`)).
		End()

	// wrong password → 401, generic message
	apitest.Handler(srv.Handler()).
		Post("/login").
		JSON(`{"email":"a@x.com","password":"wrong"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal(`$.message`, "Authentication error!")).
		End()

	// unknown email → 200 envelope, not an auth failure
	apitest.Handler(srv.Handler()).
		Post("/login").
		JSON(`{"email":"nobody@x.com","password":"p1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "User not found!")).
		End()
}

func TestProtectedRoutes_RejectBadTokens(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "A", "a@x.com", "p1")

	// no token at all
	apitest.Handler(srv.Handler()).
		Get("/").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	// token with a corrupted signature
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}
	apitest.Handler(srv.Handler()).
		Get("/").
		Header("Authorization", tampered).
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal(`$.message`, "Authentication error!")).
		End()
}

// TestVanishedUser covers a valid token whose backing record no longer
// exists: profile reads answer with the not-found envelope, while a
// mutation is an internal inconsistency and fails generically.
func TestVanishedUser(t *testing.T) {
	srv := newTestServer(t)

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars!!", 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	ghostToken, err := tokens.Generate("ghost-user-id")
	if err != nil {
		t.Fatal(err)
	}

	apitest.Handler(srv.Handler()).
		Get("/").
		Header("Authorization", ghostToken).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "User not found!")).
		End()

	apitest.Handler(srv.Handler()).
		Post("/").
		Header("Authorization", ghostToken).
		JSON(`{"takenQuiz":{"quizId":"q1","score":5}}`).
		Expect(t).
		Status(http.StatusInternalServerError).
		Assert(jsonpath.Equal(`$.success`, false)).
		End()
}

func TestSignUp_Validation(t *testing.T) {
	srv := newTestServer(t)

	apitest.Handler(srv.Handler()).
		Post("/sign-up").
		JSON(`{"user":{"name":"A","email":"a@x.com"}}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.success`, false)).
		End()

	apitest.Handler(srv.Handler()).
		Post("/sign-up").
		Body(`{"user":`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestAddQuiz_RequiresQuizID(t *testing.T) {
	srv := newTestServer(t)
	token := signUp(t, srv, "A", "a@x.com", "p1")

	apitest.Handler(srv.Handler()).
		Post("/").
		Header("Authorization", token).
		JSON(`{"takenQuiz":{"score":5}}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}
