package update_booking

import "errors"

var (
	// ErrInvalidInterval возвращается, когда начало интервала не раньше конца
	ErrInvalidInterval = errors.New("update_booking: invalid interval")

	// ErrPastStart возвращается, когда начало интервала в прошлом
	ErrPastStart = errors.New("update_booking: start time is in the past")

	// ErrNotFoundOrForbidden возвращается, когда бронирование отсутствует
	// или принадлежит другому пользователю. Случаи не различаются намеренно,
	// чтобы не раскрывать существование чужих бронирований
	ErrNotFoundOrForbidden = errors.New("update_booking: booking not found or access denied")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrTimeConflict возвращается, когда интервал пересекается
	// с существующим подтвержденным бронированием
	ErrTimeConflict = errors.New("update_booking: time slot conflicts with an existing booking")

	// ErrStoreUnavailable возвращается при retryable сбоях хранилища
	ErrStoreUnavailable = errors.New("update_booking: store unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
