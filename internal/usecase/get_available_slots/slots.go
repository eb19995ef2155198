package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateSlots генерирует сетку слотов на день и размечает доступность.
//
// Сетка идет от открытия с фиксированным шагом stepMinutes; слот входит в
// сетку, только если start + duration не выходит за время закрытия.
// Слоты, начинающиеся не строго в будущем (относительно refNow), и слоты вне
// рабочего окна мастера пропускаются; слоты, пересекающиеся с существующими
// бронированиями, остаются в списке, но помечаются недоступными.
func generateSlots(
	day domain.DaySchedule,
	staffWindow *domain.WorkingWindow,
	durationMinutes int,
	stepMinutes int,
	date time.Time,
	refNow time.Time,
	existing []*domain.Appointment,
) ([]domain.TimeSlot, error) {
	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		return []domain.TimeSlot{}, nil
	}

	openTime := *day.OpenTime
	closeTime := *day.CloseTime

	slots := make([]domain.TimeSlot, 0)

	for current := openTime; ; {
		slot := domain.TimeSlot{StartTime: current, DurationMinutes: durationMinutes}

		slotEnd, err := slot.End()
		if err != nil {
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		if isSlotEligible(current, slotEnd, staffWindow, date, refNow) {
			slot.Available = countOverlappingAppointments(current, slotEnd, existing) == 0
			slots = append(slots, slot)
		}

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots, nil
}

// isSlotEligible проверяет, что слот вообще попадает в выдачу:
// начинается строго в будущем и лежит внутри рабочего окна мастера (если задано)
func isSlotEligible(
	start, end types.TimeString,
	staffWindow *domain.WorkingWindow,
	date time.Time,
	refNow time.Time,
) bool {
	if !slotMoment(date, start).After(refNow) {
		return false
	}

	if staffWindow != nil {
		if start.IsBefore(staffWindow.Start) || end.IsAfter(staffWindow.End) {
			return false
		}
	}

	return true
}

// countOverlappingAppointments подсчитывает активные бронирования,
// пересекающиеся со слотом [start, end)
//
// Интервалы полуоткрытые, неравенства строгие: бронирование, заканчивающееся
// ровно в начале слота (или начинающееся ровно в его конце), пересечением
// не считается
func countOverlappingAppointments(start, end types.TimeString, appointments []*domain.Appointment) int {
	count := 0

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptStart := appt.StartTime
		apptEnd, err := appt.StartTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			// Не можем вычислить конец бронирования - пропускаем
			continue
		}

		if apptStart.IsBefore(end) && apptEnd.IsAfter(start) {
			count++
		}
	}

	return count
}

// slotMoment собирает дату и время слота в один момент (наивное настенное
// время, представленное как UTC, сравнимое с domain.BusinessNow)
func slotMoment(date time.Time, start types.TimeString) time.Time {
	minutes, err := start.Minutes()
	if err != nil {
		minutes = 0
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, time.UTC)
}
