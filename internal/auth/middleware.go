package auth

import (
	"context"
	"log/slog"
	"net/http"
)

// contextKey is an unexported type for context keys in this package, so no
// other package can read or shadow the values stored under them.
type contextKey string

const userIDKey contextKey = "userID"

// unauthorizedBody is the terminal response for every identity failure.
// One body for all causes — a client can't tell a malformed token from an
// expired one.
const unauthorizedBody = `{"success":false,"message":"Authentication error!"}`

// RequireAuth gates a route group behind token verification.
//
// The raw Authorization header value is the token — no "Bearer " prefix is
// expected or stripped. On success the resolved userID is stored in the
// request context for handlers to pick up via UserIDFromContext. On any
// failure (missing header, bad signature, expired) the middleware writes
// the 401 envelope and the downstream handler never runs. The underlying
// verification error is logged server-side only.
func RequireAuth(tokens *TokenService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := tokens.Validate(r.Header.Get("Authorization"))
			if err != nil {
				logger.Warn("rejected request token",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(unauthorizedBody))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext retrieves the authenticated user's ID from the request
// context. Returns ("", false) when the request never passed RequireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
