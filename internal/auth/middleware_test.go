package auth

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
)

func TestRequireAuth(t *testing.T) {
	tokens := newTestTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var calls int
	var seenUserID string
	protected := RequireAuth(tokens, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		seenUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	apitest.Handler(protected).
		Get("/").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"success":false,"message":"Authentication error!"}`).
		End()

	apitest.Handler(protected).
		Get("/").
		Header("Authorization", "not-a-token").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	token, err := tokens.Generate("user-42")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// The raw header value is the token — no Bearer prefix.
	apitest.Handler(protected).
		Get("/").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		End()

	if calls != 1 {
		t.Fatalf("protected handler ran %d times, want 1", calls)
	}
	if seenUserID != "user-42" {
		t.Fatalf("userID in context = %q, want %q", seenUserID, "user-42")
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	tokens := newTestTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	protected := RequireAuth(tokens, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an expired token")
	}))

	expired, err := tokens.GenerateWithDuration("user-42", -1)
	if err != nil {
		t.Fatalf("GenerateWithDuration: %v", err)
	}

	apitest.Handler(protected).
		Get("/").
		Header("Authorization", expired).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestUserIDFromContext_Absent(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	if id, ok := UserIDFromContext(req.Context()); ok || id != "" {
		t.Fatalf("UserIDFromContext on a bare context = (%q, %v), want empty", id, ok)
	}
}
