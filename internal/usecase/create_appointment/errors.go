package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrStaffRequired возвращается, когда мастер не указан (выбор мастера обязателен)
	ErrStaffRequired = errors.New("create_appointment: staff member is required")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("create_appointment: staff member not found")

	// ErrDuplicateAppointment возвращается при повторной отправке той же заявки
	// (тот же клиент, дата, услуга, время и мастер)
	ErrDuplicateAppointment = errors.New("create_appointment: duplicate appointment")

	// ErrSlotNotAvailable возвращается, когда слот занят или уже в прошлом
	ErrSlotNotAvailable = errors.New("create_appointment: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
