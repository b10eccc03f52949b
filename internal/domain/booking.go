package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the declared values
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a room reservation for a half-open time interval
type Booking struct {
	ID     string
	RoomID string
	UserID string

	StartTime time.Time
	EndTime   time.Time

	Purpose *string
	Status  BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booked time range as a half-open interval
func (b *Booking) Interval() Interval {
	return NewInterval(b.StartTime, b.EndTime)
}

// Blocks returns true if the booking constrains other reservations.
// Only confirmed bookings participate in overlap checks
func (b *Booking) Blocks() bool {
	return b.Status == StatusConfirmed
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID string) bool {
	return b.UserID == userID
}
