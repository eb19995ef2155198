package create_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgServiceNotFound      = "услуга не найдена"
	msgStaffRequired        = "необходимо выбрать мастера"
	msgStaffNotFound        = "мастер не найден"
	msgDuplicateAppointment = "такая запись уже существует"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case validation.Is(err):
			// Ошибки валидации несут адресное сообщение (например, требуемое
			// число цифр для страны телефона) - отдаем его клиенту как есть
			h.logger.Warn("POST /appointments - Validation failed: email=%s, error=%v", req.CustomerEmail, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrStaffRequired):
			h.logger.Warn("POST /appointments - Staff not specified: email=%s", req.CustomerEmail)
			handlers.RespondBadRequest(w, msgStaffRequired)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found: staff_id=%v", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrDuplicateAppointment):
			h.logger.Warn("POST /appointments - Duplicate appointment: email=%s, date=%s, time=%s",
				req.CustomerEmail, req.AppointmentDate, req.StartTime)
			handlers.RespondConflict(w, msgDuplicateAppointment)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s",
				req.AppointmentDate, req.StartTime)
			h.metrics.SlotConflicts.Inc()
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: email=%s, error=%v",
				req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.metrics.AppointmentsCreated.WithLabelValues(strconv.FormatInt(result.ServiceID, 10)).Inc()
	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, email=%s",
		result.ID, result.CustomerEmail)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
