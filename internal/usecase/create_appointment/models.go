package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель заявки на создание бронирования
// Дата и время приходят сырыми строками и разбираются валидатором
type Request struct {
	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	CustomerPhone string  // Телефон клиента в международном формате
	ServiceID     int64   // ID услуги
	StaffID       *int64  // ID мастера (обязателен, указатель ради симметрии с моделью)
	Date          string  // Дата бронирования "YYYY-MM-DD"
	StartTime     string  // Время начала "HH:MM"
	Notes         *string // Дополнительные заметки (опционально)

	// TimezoneOffsetMinutes смещение часового пояса клиента от UTC в минутах
	// (знаковая конвенция getTimezoneOffset), опционально
	TimezoneOffsetMinutes *int
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента (нормализованный)
	CustomerPhone   string           // Телефон клиента
	ServiceID       int64            // ID услуги
	ServiceName     string           // Название услуги
	StaffID         int64            // ID мастера
	StaffName       string           // Имя мастера
	AppointmentDate time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования (pending)
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// Policy статические политики бронирования из конфигурации
type Policy struct {
	DefaultDurationMinutes int
	DefaultTimezoneOffset  int
}

// fromDomain конвертирует доменное бронирование в response
func fromDomain(appt *domain.Appointment) *Response {
	resp := &Response{
		ID:              appt.ID,
		CustomerName:    appt.CustomerName,
		CustomerEmail:   appt.CustomerEmail,
		CustomerPhone:   appt.CustomerPhone,
		ServiceID:       appt.ServiceID,
		ServiceName:     appt.ServiceName,
		AppointmentDate: appt.AppointmentDate,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
	if appt.StaffID != nil {
		resp.StaffID = *appt.StaffID
	}
	if appt.StaffName != nil {
		resp.StaffName = *appt.StaffName
	}
	return resp
}
