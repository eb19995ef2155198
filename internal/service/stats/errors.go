package stats

import "errors"

var (
	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("stats service: internal error")
)
