package cancel_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason    *string `json:"cancellationReason,omitempty"`
	TimezoneOffsetMinutes *int    `json:"timezoneOffsetMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelAppointmentRequest{
		Reason:                reason,
		TimezoneOffsetMinutes: r.TimezoneOffsetMinutes,
	}
}
