package holidayapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidayapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("holidayapi client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Календарь праздников - best-effort источник: его недоступность означает
	// "праздники неизвестны", а не ошибку основного запроса
	ErrServiceDegraded = errors.New("holidayapi unavailable: graceful degradation applied")
)
