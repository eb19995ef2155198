package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// DaySchedule рабочие часы на один день недели
// IsOpen = false означает, что день полностью закрыт
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
}

// BusinessHours расписание работы бизнеса по дням недели
type BusinessHours struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday возвращает расписание на указанный день недели
func (b BusinessHours) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return b.Monday
	case time.Tuesday:
		return b.Tuesday
	case time.Wednesday:
		return b.Wednesday
	case time.Thursday:
		return b.Thursday
	case time.Friday:
		return b.Friday
	case time.Saturday:
		return b.Saturday
	case time.Sunday:
		return b.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// WorkingWindow рабочее окно мастера на день недели
type WorkingWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// WeeklySchedule недельное расписание мастера
// nil для дня недели означает, что мастер в этот день не работает
type WeeklySchedule struct {
	Monday    *WorkingWindow `json:"monday,omitempty"`
	Tuesday   *WorkingWindow `json:"tuesday,omitempty"`
	Wednesday *WorkingWindow `json:"wednesday,omitempty"`
	Thursday  *WorkingWindow `json:"thursday,omitempty"`
	Friday    *WorkingWindow `json:"friday,omitempty"`
	Saturday  *WorkingWindow `json:"saturday,omitempty"`
	Sunday    *WorkingWindow `json:"sunday,omitempty"`
}

// ForWeekday возвращает рабочее окно мастера на указанный день недели
func (s WeeklySchedule) ForWeekday(weekday time.Weekday) *WorkingWindow {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return nil
	}
}

// Holiday праздничный или нерабочий день
type Holiday struct {
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
	IsClosed bool      `json:"isClosed"` // true = полностью закрыто, слоты не генерируются
}
