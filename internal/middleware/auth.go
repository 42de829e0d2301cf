package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"coliving/internal/auth"
	"coliving/internal/domain/services"
	"coliving/internal/httputil"

	"github.com/google/uuid"
)

// Auth verifies the bearer token and stores the caller's services.Principal in the request context.
func Auth(verifier auth.JWTVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Pre-flight requests carry no credentials
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				logger.Debug("bearer token missing", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			id, err := uuid.Parse(claims.GetUserID())
			if err != nil {
				logger.Warn("token subject is not a uuid", "subject", claims.GetUserID())
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token subject")
				return
			}

			principal := services.Principal{ID: id, IsOperator: claims.IsOperator()}
			next.ServeHTTP(w, httputil.WithPrincipal(r, principal))
		})
	}
}
