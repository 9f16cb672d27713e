package contracts

import "kurabi-service/internal/pkg/dto/requests"

type WhatsAppService interface {
	BuildReservationLink(reservationID string, request *requests.WhatsAppReservationRequest) string
}
