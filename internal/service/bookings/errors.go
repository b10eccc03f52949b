package bookings

import "errors"

var (
	// ErrNotFoundOrForbidden возвращается, когда бронирование отсутствует
	// или принадлежит другому пользователю. Случаи намеренно не различаются
	ErrNotFoundOrForbidden = errors.New("bookings: booking not found or access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
