package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// TimeSlot represents a candidate appointment start time for a given date.
// Slots are ephemeral: computed on demand and never persisted.
type TimeSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// End возвращает время окончания слота
func (s *TimeSlot) End() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
