package get_customer_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgMissingEmail  = "email клиента обязателен"
	msgInvalidStatus = "неизвестный статус записи"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: customerEmail (required), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем customerEmail из query параметров
	email := query.Get("customerEmail")
	if email == "" {
		h.logger.Warn("GET /appointments - Missing customer email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	// Извлекаем status из query параметров (опционально)
	var status *string
	if statusStr := query.Get("status"); statusStr != "" {
		status = &statusStr
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), &models.GetCustomerAppointmentsRequest{
		CustomerEmail: email,
		Status:        status,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /appointments - Invalid status filter: status=%v", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed to get customer appointments: email=%s, error=%v",
				email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Customer appointments retrieved successfully: email=%s, count=%d",
		email, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
