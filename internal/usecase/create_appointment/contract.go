package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/directoryservice"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	FindWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// DirectoryClient интерфейс клиента DirectoryService
type DirectoryClient interface {
	GetService(ctx context.Context, serviceID int64) (*directoryservice.Service, error)
	GetStaff(ctx context.Context, staffID int64) (*directoryservice.Staff, error)
}

// AvailabilityProvider перепроверка доступности слота
// Реализуется usecase get_available_slots - единственным источником истины
// о доступности слотов
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// SlotLocker advisory-блокировки по ключу слота
type SlotLocker interface {
	Acquire(key string) (release func())
}

// BookingValidator нормализация и валидация сырой заявки
type BookingValidator interface {
	ValidateBooking(input *validation.BookingInput, now time.Time) (*validation.ValidatedBooking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
