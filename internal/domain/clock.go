package domain

import "time"

// BusinessNow переводит момент времени в наивное настенное время бизнес-таймзоны.
//
// offsetMinutes задается в знаковой конвенции getTimezoneOffset: на сколько
// минут локальные часы отстают от UTC (300 = UTC-5). Результат представлен
// в time.UTC и сравним с Appointment.ScheduledAt.
func BusinessNow(now time.Time, offsetMinutes int) time.Time {
	return now.UTC().Add(-time.Duration(offsetMinutes) * time.Minute)
}
