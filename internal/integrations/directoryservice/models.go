package directoryservice

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Service модель услуги из DirectoryService
type Service struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"` // 0 = длительность не задана, применяется дефолт
}

// Staff модель мастера из DirectoryService
type Staff struct {
	ID       int64                 `json:"id"`
	Name     string                `json:"name"`
	Schedule domain.WeeklySchedule `json:"schedule"`
}

// Holiday модель праздничного дня из DirectoryService
type Holiday struct {
	Date     string `json:"date"` // "YYYY-MM-DD"
	Name     string `json:"name"`
	IsClosed bool   `json:"is_closed"`
}

// ToDomain конвертирует праздник в доменную модель
func (h *Holiday) ToDomain() (domain.Holiday, error) {
	date, err := time.Parse(domain.DateFormat, h.Date)
	if err != nil {
		return domain.Holiday{}, err
	}
	return domain.Holiday{
		Date:     date,
		Name:     h.Name,
		IsClosed: h.IsClosed,
	}, nil
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
