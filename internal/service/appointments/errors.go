package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition возвращается при запрещенном переходе статусов
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAppointmentInFuture возвращается при попытке ретроспективного перехода
	// (confirmed/completed/no_show) для бронирования, которое еще не наступило
	ErrAppointmentInFuture = errors.New("appointment is still in the future")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")

	// ErrCannotCancel возвращается, когда статус не допускает отмену
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrAppointmentInPast возвращается при попытке отменить уже прошедшее бронирование
	ErrAppointmentInPast = errors.New("appointment is already in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments service: internal error")
)
