package crm

import (
	"context"
	"log/slog"
	"net/http"

	"ordref/internal/platform/metrics"
	"ordref/internal/tenant/models"
	"ordref/internal/transport/http/shared"
	dErrors "ordref/pkg/domain-errors"
)

// Authenticator validates a username/password pair and returns the user
// context. The tenant directory satisfies this.
type Authenticator interface {
	Authenticate(username, password string) (models.UserContext, error)
}

type userContextKey struct{}

// GetUser retrieves the authenticated user context from the request context.
func GetUser(ctx context.Context) (models.UserContext, bool) {
	user, ok := ctx.Value(userContextKey{}).(models.UserContext)
	return user, ok
}

// BasicAuth guards the protected CRM resources. On success the immutable user
// context is threaded through the request context; on failure the request is
// answered with 401 and the uniform error envelope.
func BasicAuth(auth Authenticator, m *metrics.Metrics, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				m.IncrementAuthFailures()
				writeUnauthorized(w, dErrors.New(dErrors.CodeUnauthorized,
					"Missing or invalid Authorization header"))
				return
			}

			user, err := auth.Authenticate(username, password)
			if err != nil {
				m.IncrementAuthFailures()
				logger.WarnContext(r.Context(), "authentication failed",
					"username", username,
					"error", err,
				)
				writeUnauthorized(w, err)
				return
			}

			logger.InfoContext(r.Context(), "user authenticated",
				"username", user.UserName,
				"tenant_id", user.TenantID,
			)
			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", `Basic realm="ord-reference-app"`)
	shared.WriteError(w, err)
}
