package domain

// Business validation constants
const (
	MaxPurposeLength     = 255
	MaxRoomNameLength    = 255
	MaxDescriptionLength = 512
	MinRoomCapacity      = 1
)

// BlockingStatuses список статусов, участвующих в проверке пересечений
// Only confirmed bookings constrain new reservations
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
}

// ValidStatuses список всех допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPending,
	StatusCancelled,
}
