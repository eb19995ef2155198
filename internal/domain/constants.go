package domain

// Default configuration values
const (
	DefaultServiceDurationMinutes = 30
	DefaultSlotStepMinutes        = 30
	DefaultMaxAdvanceBookingDays  = 90

	// DefaultTimezoneOffsetMinutes смещение бизнес-таймзоны в минутах от UTC
	// (в знаковой конвенции getTimezoneOffset: на сколько минут локальные часы
	// отстают от UTC). 300 = UTC-5
	DefaultTimezoneOffsetMinutes = 300
)

// Business validation constants
const (
	MinCustomerNameLength = 2
	MaxEmailLength        = 254
	MaxNotesLength        = 500

	// Фолбэк для телефонов с неизвестным кодом страны
	MinGenericPhoneDigits = 8
	MaxGenericPhoneDigits = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancelledStatuses статусы, не занимающие слот
// Используется при подсчете пересечений и проверке дубликатов
var CancelledStatuses = []AppointmentStatus{
	StatusCancelled,
}

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}
