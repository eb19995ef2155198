package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// allowedTransitions таблица переходов статусов
// Статусы монотонны: вернуться в более ранний статус нельзя,
// у терминальных статусов список переходов пуст
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusNoShow},
	StatusCancelled: {},
	StatusCompleted: {},
	StatusNoShow:    {},
}

// IsValid returns true if the status is a recognized appointment status
func (s AppointmentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo returns true if a transition from this status to target is allowed
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status
func (s AppointmentStatus) IsTerminal() bool {
	allowed, ok := allowedTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

// Appointment represents a scheduled appointment in the system
type Appointment struct {
	ID int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID   int64
	ServiceName string

	StaffID   *int64
	StaffName *string

	AppointmentDate time.Time        // Календарная дата без компонента времени
	StartTime       types.TimeString // Время начала в бизнес-таймзоне
	DurationMinutes int
	Status          AppointmentStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can transition to cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status.CanTransitionTo(StatusCancelled)
}

// ScheduledAt собирает дату и время начала в один момент (наивное время
// в бизнес-таймзоне, представленное как UTC)
func (a *Appointment) ScheduledAt() time.Time {
	minutes, err := a.StartTime.Minutes()
	if err != nil {
		minutes = 0
	}
	y, m, d := a.AppointmentDate.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, time.UTC)
}

// AppointmentFilter фильтр для выборки бронирований
type AppointmentFilter struct {
	Date            *time.Time          // Равенство по дате
	StartDate       *time.Time          // Начало периода (включительно)
	EndDate         *time.Time          // Конец периода (включительно)
	StaffID         *int64              // Равенство по мастеру
	CustomerEmail   *string             // Равенство по email клиента
	Status          *AppointmentStatus  // Равенство по статусу
	ExcludeStatuses []AppointmentStatus // Статусы, исключаемые из выборки
}
