package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kurabi-service/internal/app/config"
	"kurabi-service/internal/pkg/constvars"
	"kurabi-service/internal/pkg/utils"
)

func adminTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	})
}

func TestAdminAuthenticate(t *testing.T) {
	m := adminTestMiddlewares()

	var reachedSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reachedSubject, _ = r.Context().Value(constvars.CONTEXT_ADMIN_SUBJECT_KEY).(string)
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Valid Token Passes Through", func(t *testing.T) {
		token, err := utils.GenerateAdminJWT("ops", "test-secret", 1)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()

		m.AdminAuthenticate(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "ops", reachedSubject)
	})

	t.Run("Missing Header Is Unauthorized", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
		recorder := httptest.NewRecorder()

		m.AdminAuthenticate(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Wrong Secret Is Unauthorized", func(t *testing.T) {
		token, err := utils.GenerateAdminJWT("ops", "other-secret", 1)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()

		m.AdminAuthenticate(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
