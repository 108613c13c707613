package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь с таким кодом не найдена
	ErrReservationNotFound = errors.New("service.reservations: reservation not found")

	// ErrNotCancellable возвращается при попытке отменить бронь в финальном статусе
	ErrNotCancellable = errors.New("service.reservations: reservation cannot be cancelled")

	// ErrAlreadyFinal возвращается при попытке перевести бронь из финального статуса
	ErrAlreadyFinal = errors.New("service.reservations: reservation is in a final status")

	// ErrInvalidTransition возвращается при недопустимом переходе статусов
	ErrInvalidTransition = errors.New("service.reservations: status transition is not allowed")

	// ErrNotUnderReview возвращается для review-операций над обычной бронью
	ErrNotUnderReview = errors.New("service.reservations: reservation is not under review")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.reservations: internal error")
)
