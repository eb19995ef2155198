package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusNoShow, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusPending, false},

		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusNoShow, false},
		{StatusNoShow, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), "status %s", s)
	}
	assert.False(t, AppointmentStatus("no-show").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
	assert.False(t, AppointmentStatus("unknown").IsValid())
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestAppointment_IsActive(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.IsActive())

	// Завершенные и неявки продолжают занимать слот в истории дня,
	// слот освобождает только отмена
	appt.Status = StatusCompleted
	assert.True(t, appt.IsActive())

	appt.Status = StatusCancelled
	assert.False(t, appt.IsActive())
}

func TestAppointment_ScheduledAt(t *testing.T) {
	appt := &Appointment{
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("14:30"),
	}

	assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC), appt.ScheduledAt())
}

func TestBusinessNow(t *testing.T) {
	now := time.Date(2026, 9, 15, 15, 0, 0, 0, time.UTC)

	// Смещение 300 минут = UTC-5: бизнес-часы отстают от UTC на 5 часов
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), BusinessNow(now, 300))

	// Отрицательное смещение - восточнее UTC
	assert.Equal(t, time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC), BusinessNow(now, -180))

	// Нулевое смещение - UTC
	assert.Equal(t, now, BusinessNow(now, 0))
}
