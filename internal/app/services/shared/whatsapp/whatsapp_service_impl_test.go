package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kurabi-service/internal/pkg/dto/requests"
)

func TestBuildReservationLink(t *testing.T) {
	service := NewWhatsAppService("+819012345678")

	link := service.BuildReservationLink("R20260828-X7K2P9", &requests.WhatsAppReservationRequest{
		EventTitle: "Tsukiji Food Walk",
		EventDate:  "2026/08/28",
		EventTime:  "09:00",
		EventPrice: "¥5,000",
	})

	assert.True(t, strings.HasPrefix(link, "https://wa.me/819012345678?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "R20260828-X7K2P9")
	assert.Contains(t, text, "Tsukiji Food Walk")
	assert.Contains(t, text, "2026/08/28")
	assert.Contains(t, text, "09:00")
	assert.Contains(t, text, "¥5,000")
}

func TestBuildReservationLinkOmitsEmptyPrice(t *testing.T) {
	service := NewWhatsAppService("819012345678")

	link := service.BuildReservationLink("R20260828-AAAAAA", &requests.WhatsAppReservationRequest{
		EventTitle: "Evening Izakaya Tour",
		EventDate:  "2026/08/29",
		EventTime:  "18:30",
	})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.NotContains(t, parsed.Query().Get("text"), "Price:")
}
