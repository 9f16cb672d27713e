package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/pkg/dto/requests"
)

type whatsAppService struct {
	Number string
}

var (
	whatsAppServiceInstance contracts.WhatsAppService
	onceWhatsAppService     sync.Once
)

func NewWhatsAppService(number string) contracts.WhatsAppService {
	onceWhatsAppService.Do(func() {
		whatsAppServiceInstance = &whatsAppService{
			Number: strings.TrimPrefix(number, "+"),
		}
	})
	return whatsAppServiceInstance
}

// BuildReservationLink returns a wa.me deep link with the booking details
// prefilled so the chat opens ready to send.
func (s *whatsAppService) BuildReservationLink(reservationID string, request *requests.WhatsAppReservationRequest) string {
	var message strings.Builder
	message.WriteString("Hello! I would like to make a reservation.\n")
	fmt.Fprintf(&message, "Reservation ID: %s\n", reservationID)
	fmt.Fprintf(&message, "Tour: %s\n", request.EventTitle)
	fmt.Fprintf(&message, "Date: %s\n", request.EventDate)
	fmt.Fprintf(&message, "Time: %s\n", request.EventTime)
	if request.EventPrice != "" {
		fmt.Fprintf(&message, "Price: %s\n", request.EventPrice)
	}

	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		s.Number,
		url.QueryEscape(message.String()),
	)
}
