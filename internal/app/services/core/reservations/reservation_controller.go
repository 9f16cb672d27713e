package reservations

import (
	"context"
	"net/http"
	"time"

	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/pkg/constvars"
	"kurabi-service/internal/pkg/dto/requests"
	"kurabi-service/internal/pkg/dto/responses"
	"kurabi-service/internal/pkg/exceptions"
	"kurabi-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReservationController struct {
	Logger             *zap.Logger
	ReservationUsecase contracts.ReservationUsecase
}

func NewReservationController(logger *zap.Logger, reservationUsecase contracts.ReservationUsecase) *ReservationController {
	return &ReservationController{
		Logger:             logger,
		ReservationUsecase: reservationUsecase,
	}
}

// CreateWhatsApp accepts the booking details as a JSON body or, for the
// widget's GET flow, as query parameters. Attribution missing from the
// request itself is harvested from cookies and the referer.
func (ctrl *ReservationController) CreateWhatsApp(w http.ResponseWriter, r *http.Request) {
	request := new(requests.WhatsAppReservationRequest)

	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	} else {
		query := r.URL.Query()
		request.EventID = query.Get("event_id")
		request.EventTitle = query.Get("event_title")
		request.EventDate = query.Get("event_date")
		request.EventTime = query.Get("event_time")
		request.EventPrice = query.Get("event_price")
	}

	if request.UTMSource == "" && request.UTMMedium == "" && request.UTMContent == "" {
		utm := utils.HarvestUTM(r)
		request.UTMSource = utm.Source
		request.UTMMedium = utm.Medium
		request.UTMContent = utm.Content
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReservationUsecase.CreateWhatsAppReservation(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReservationSuccessMessage, response)
}

// Log is the sendBeacon sink. Beacons carry everything in the query string
// regardless of the HTTP method, and the response is always a bare success
// so a retrying widget never surfaces an error to the visitor.
func (ctrl *ReservationController) Log(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.ReservationLogRequest{
		ReservationID: query.Get("reservation_id"),
		UTMSource:     query.Get("utm_source"),
		UTMMedium:     query.Get("utm_medium"),
		UTMContent:    query.Get("utm_content"),
	}

	if request.ReservationID == "" && r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			request = &requests.ReservationLogRequest{}
		}
	}

	if request.UTMSource == "" && request.UTMMedium == "" && request.UTMContent == "" {
		utm := utils.HarvestUTM(r)
		request.UTMSource = utm.Source
		request.UTMMedium = utm.Medium
		request.UTMContent = utm.Content
	}

	if request.ReservationID != "" {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := ctrl.ReservationUsecase.RecordLog(ctx, request); err != nil {
			ctrl.Logger.Error("reservationController.Log error recording log",
				zap.String(constvars.LoggingReservationIDKey, request.ReservationID),
				zap.Error(err),
			)
		}
	}

	utils.BuildRawResponse(w, constvars.StatusOK, map[string]bool{"success": true})
}

// ServiceInfo answers probes that hit the beacon endpoint without a
// reservation payload.
func (ctrl *ReservationController) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	utils.BuildRawResponse(w, constvars.StatusOK, responses.ServiceInfo{
		Status:  "ok",
		Service: constvars.AppServiceName,
		Usage:   constvars.AppServiceUsage,
	})
}
