package create_booking

import "errors"

var (
	// ErrInvalidInterval возвращается, когда начало интервала не раньше конца
	ErrInvalidInterval = errors.New("create_booking: invalid interval")

	// ErrPastStart возвращается, когда начало интервала в прошлом
	ErrPastStart = errors.New("create_booking: start time is in the past")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrTimeConflict возвращается, когда интервал пересекается
	// с существующим подтвержденным бронированием
	ErrTimeConflict = errors.New("create_booking: time slot conflicts with an existing booking")

	// ErrStoreUnavailable возвращается при retryable сбоях хранилища
	// (deadlock, таймаут блокировки, потеря соединения)
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
