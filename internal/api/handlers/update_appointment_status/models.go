package update_appointment_status

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status                string `json:"status"`
	TimezoneOffsetMinutes *int   `json:"timezoneOffsetMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:                r.Status,
		TimezoneOffsetMinutes: r.TimezoneOffsetMinutes,
	}
}
