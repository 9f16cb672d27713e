package reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kurabi-service/internal/pkg/dto/requests"
	"kurabi-service/internal/pkg/dto/responses"
)

type stubReservationUsecase struct {
	created  []requests.WhatsAppReservationRequest
	recorded []requests.ReservationLogRequest
}

func (s *stubReservationUsecase) CreateWhatsAppReservation(ctx context.Context, request *requests.WhatsAppReservationRequest) (*responses.WhatsAppReservation, error) {
	s.created = append(s.created, *request)
	return &responses.WhatsAppReservation{
		ReservationID: "R20260828-X7K2P9",
		WhatsAppURL:   "https://wa.me/819012345678?text=hello",
	}, nil
}

func (s *stubReservationUsecase) RecordLog(ctx context.Context, request *requests.ReservationLogRequest) error {
	s.recorded = append(s.recorded, *request)
	return nil
}

func TestCreateWhatsApp(t *testing.T) {
	t.Run("POST With JSON Body", func(t *testing.T) {
		usecase := &stubReservationUsecase{}
		ctrl := NewReservationController(zap.NewNop(), usecase)

		body := `{"event_id":"65f1e4a2b3c4d5e6f7a8b9c0","event_title":"Tsukiji Food Walk","event_date":"2026/08/28","event_time":"09:00","event_price":"¥5,000","utm_source":"instagram"}`
		request := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/whatsapp", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		ctrl.CreateWhatsApp(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.Len(t, usecase.created, 1)
		assert.Equal(t, "instagram", usecase.created[0].UTMSource)

		var envelope responses.ResponseDTO
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
	})

	t.Run("GET With Query Parameters And Referer Attribution", func(t *testing.T) {
		usecase := &stubReservationUsecase{}
		ctrl := NewReservationController(zap.NewNop(), usecase)

		target := "/api/v1/reservations/whatsapp?event_title=Evening+Tour&event_date=2026%2F08%2F29&event_time=18%3A00&event_price=%C2%A53%2C000"
		request := httptest.NewRequest(http.MethodGet, target, nil)
		request.Header.Set("Referer", "https://tours.example.com/?utm_source=newsletter&utm_medium=email")
		recorder := httptest.NewRecorder()

		ctrl.CreateWhatsApp(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.Len(t, usecase.created, 1)
		assert.Equal(t, "Evening Tour", usecase.created[0].EventTitle)
		assert.Equal(t, "newsletter", usecase.created[0].UTMSource)
		assert.Equal(t, "email", usecase.created[0].UTMMedium)
	})

	t.Run("Rejects Malformed Time", func(t *testing.T) {
		usecase := &stubReservationUsecase{}
		ctrl := NewReservationController(zap.NewNop(), usecase)

		body := `{"event_title":"Bad Time","event_date":"2026/08/28","event_time":"9am"}`
		request := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/whatsapp", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		ctrl.CreateWhatsApp(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, usecase.created)
	})
}

func TestLog(t *testing.T) {
	t.Run("Beacon With Query Parameters", func(t *testing.T) {
		usecase := &stubReservationUsecase{}
		ctrl := NewReservationController(zap.NewNop(), usecase)

		target := "/api/v1/reservations/log?reservation_id=R20260828-X7K2P9&utm_source=instagram&utm_medium=story"
		request := httptest.NewRequest(http.MethodPost, target, nil)
		recorder := httptest.NewRecorder()

		ctrl.Log(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.Len(t, usecase.recorded, 1)
		assert.Equal(t, "R20260828-X7K2P9", usecase.recorded[0].ReservationID)
		assert.Equal(t, "instagram", usecase.recorded[0].UTMSource)
		assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
	})

	t.Run("Missing Reservation ID Still Succeeds", func(t *testing.T) {
		usecase := &stubReservationUsecase{}
		ctrl := NewReservationController(zap.NewNop(), usecase)

		request := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/log", nil)
		recorder := httptest.NewRecorder()

		ctrl.Log(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, usecase.recorded)
		assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
	})
}

func TestServiceInfo(t *testing.T) {
	ctrl := NewReservationController(zap.NewNop(), &stubReservationUsecase{})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	recorder := httptest.NewRecorder()

	ctrl.ServiceInfo(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var info responses.ServiceInfo
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &info))
	assert.Equal(t, "ok", info.Status)
	assert.Equal(t, "kurabi-reservation-log", info.Service)
	assert.NotEmpty(t, info.Usage)
}
