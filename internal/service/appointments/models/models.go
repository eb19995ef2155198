package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на изменение статуса бронирования
type UpdateStatusRequest struct {
	Status                string `json:"status"`
	TimezoneOffsetMinutes *int   `json:"timezoneOffsetMinutes,omitempty"`
}

// CancelAppointmentRequest запрос на отмену бронирования
type CancelAppointmentRequest struct {
	Reason                string `json:"reason"`
	TimezoneOffsetMinutes *int   `json:"timezoneOffsetMinutes,omitempty"`
}

// GetCustomerAppointmentsRequest запрос истории бронирований клиента
type GetCustomerAppointmentsRequest struct {
	CustomerEmail string  `json:"customerEmail"`
	Status        *string `json:"status,omitempty"`
}

// Response модели

// AppointmentResponse модель бронирования для ответа сервиса
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	StaffID         *int64  `json:"staffId,omitempty"`
	StaffName       *string `json:"staffName,omitempty"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AppointmentListResponse список бронирований
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует доменное бронирование в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              appt.ID,
		CustomerName:    appt.CustomerName,
		CustomerEmail:   appt.CustomerEmail,
		CustomerPhone:   appt.CustomerPhone,
		ServiceID:       appt.ServiceID,
		ServiceName:     appt.ServiceName,
		StaffID:         appt.StaffID,
		StaffName:       appt.StaffName,
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
	}

	resp.CancellationReason = appt.CancellationReason
	if appt.CancelledAt != nil {
		cancelledAt := appt.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список доменных бронирований
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainStatus валидирует и конвертирует строковый статус в доменный
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
