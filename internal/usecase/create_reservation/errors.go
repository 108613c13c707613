package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Текст ошибки называет категорию поля, которое не прошло валидацию
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при дате в прошлом или нулевой дате
	ErrInvalidDate = errors.New("create_reservation: invalid tour date")

	// ErrDayNotAvailable возвращается, когда день не принимает экскурсии
	// (выходной, административное закрытие или праздник)
	ErrDayNotAvailable = errors.New("create_reservation: day is not available for tours")

	// ErrInvalidWindow возвращается, когда время начала не входит в расписание
	ErrInvalidWindow = errors.New("create_reservation: unknown tour window")

	// ErrCapacityExceeded возвращается, когда в окне не хватает мест
	// Проверка выполняется атомарно на записи - конкурирующая заявка
	// не может переполнить окно
	ErrCapacityExceeded = errors.New("create_reservation: window capacity exceeded")

	// ErrJustificationRequired возвращается для special-заявки без обоснования
	ErrJustificationRequired = errors.New("create_reservation: justification is required for oversized groups")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
