package middlewares

import (
	"context"
	"net/http"
	"strings"

	"kurabi-service/internal/pkg/constvars"
	"kurabi-service/internal/pkg/exceptions"
	"kurabi-service/internal/pkg/utils"
)

// AdminAuthenticate guards the event management endpoints with a bearer
// token carrying the admin scope.
func (m *Middlewares) AdminAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		subject, err := utils.ParseAdminJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_SUBJECT_KEY, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
