package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarvestUTM(t *testing.T) {
	t.Run("Query Parameters Win", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/log?utm_source=instagram&utm_medium=story&utm_content=spring", nil)
		request.AddCookie(&http.Cookie{Name: "utm_source", Value: "google"})

		utm := HarvestUTM(request)

		assert.Equal(t, "instagram", utm.Source)
		assert.Equal(t, "story", utm.Medium)
		assert.Equal(t, "spring", utm.Content)
	})

	t.Run("Cookies Fill Missing Parameters", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/log?utm_source=instagram", nil)
		request.AddCookie(&http.Cookie{Name: "utm_medium", Value: "cpc"})

		utm := HarvestUTM(request)

		assert.Equal(t, "instagram", utm.Source)
		assert.Equal(t, "cpc", utm.Medium)
		assert.Empty(t, utm.Content)
	})

	t.Run("Cookie Values Are URL Decoded", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/log", nil)
		request.AddCookie(&http.Cookie{Name: "utm_content", Value: "summer%20sale"})

		utm := HarvestUTM(request)

		assert.Equal(t, "summer sale", utm.Content)
	})

	t.Run("Referer Query Is The Last Resort", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/log", nil)
		request.Header.Set("Referer", "https://tours.example.com/?utm_source=newsletter&utm_medium=email")

		utm := HarvestUTM(request)

		assert.Equal(t, "newsletter", utm.Source)
		assert.Equal(t, "email", utm.Medium)
	})

	t.Run("Nothing Harvested", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/log", nil)

		utm := HarvestUTM(request)

		assert.Empty(t, utm.Source)
		assert.Empty(t, utm.Medium)
		assert.Empty(t, utm.Content)
	})
}
