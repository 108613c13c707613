package closures

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.closures: invalid input data")

	// ErrClosureExists возвращается, когда на дату уже объявлено закрытие
	ErrClosureExists = errors.New("service.closures: closure already exists for this date")

	// ErrClosureNotFound возвращается, когда закрытие не найдено
	ErrClosureNotFound = errors.New("service.closures: closure not found")

	// ErrRangeTooLong возвращается для диапазона длиннее допустимого
	ErrRangeTooLong = errors.New("service.closures: closure range is too long")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.closures: internal error")
)
