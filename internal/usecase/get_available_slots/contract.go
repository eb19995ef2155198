package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/directoryservice"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	FindWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// DirectoryClient интерфейс клиента DirectoryService
type DirectoryClient interface {
	GetService(ctx context.Context, serviceID int64) (*directoryservice.Service, error)
	GetStaff(ctx context.Context, staffID int64) (*directoryservice.Staff, error)
	GetHolidayByDate(ctx context.Context, date time.Time) (*directoryservice.Holiday, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
