package validation

import "errors"

var (
	// ErrInvalidName возвращается при слишком коротком имени клиента
	ErrInvalidName = errors.New("invalid customer name")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidDate возвращается при некорректном формате или значении даты
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrDateInPast возвращается, когда дата раньше сегодняшнего дня
	ErrDateInPast = errors.New("appointment date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно предварительной записи
	ErrDateTooFarInFuture = errors.New("appointment date is too far in the future")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid appointment time")

	// ErrClosedDay возвращается, когда бизнес закрыт в выбранный день недели
	ErrClosedDay = errors.New("business is closed on this day")

	// ErrInvalidNotes возвращается при слишком длинных заметках
	ErrInvalidNotes = errors.New("invalid notes")
)

// sentinels все ошибки валидации для проверки Is
var sentinels = []error{
	ErrInvalidName,
	ErrInvalidEmail,
	ErrInvalidPhone,
	ErrInvalidDate,
	ErrDateInPast,
	ErrDateTooFarInFuture,
	ErrInvalidTime,
	ErrClosedDay,
	ErrInvalidNotes,
}

// Is проверяет, что ошибка является ошибкой валидации входных данных
func Is(err error) bool {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
