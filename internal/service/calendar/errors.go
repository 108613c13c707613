package calendar

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном годе или месяце
	ErrInvalidPeriod = errors.New("calendar: invalid year or month")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
