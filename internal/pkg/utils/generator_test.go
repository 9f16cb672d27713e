package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kurabi-service/internal/pkg/constvars"
)

func TestGenerateReservationID(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, 3, 14, 23, 45, 0, 0, time.UTC)

	t.Run("Format Embeds Local Date", func(t *testing.T) {
		id, err := GenerateReservationID(now, jst)
		require.NoError(t, err)
		// 23:45 UTC is already the 15th in JST.
		assert.Regexp(t, regexp.MustCompile(`^R20260315-[A-Z2-9]{6}$`), id)
	})

	t.Run("Suffix Avoids Ambiguous Characters", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			id, err := GenerateReservationID(now, jst)
			require.NoError(t, err)
			suffix := id[len(id)-6:]
			assert.NotContains(t, suffix, "O")
			assert.NotContains(t, suffix, "I")
			assert.NotContains(t, suffix, "0")
			assert.NotContains(t, suffix, "1")
		}
	})

	t.Run("IDs Are Unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 200; i++ {
			id, err := GenerateReservationID(now, jst)
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	assert.Regexp(t, regexp.MustCompile(`^`+constvars.REQUEST_ID_PREFIX), id)
	assert.NotEqual(t, GenerateRequestID(), id)
}

func TestGenerateAdminJWT(t *testing.T) {
	token, err := GenerateAdminJWT("ops", "secret-key", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
