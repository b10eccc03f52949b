package domain

// Room represents a bookable shared room.
// Rooms are created by the seed process and are immutable during normal
// operation; the booking flow only checks their existence
type Room struct {
	ID          string
	Name        string
	Capacity    int
	Description *string
}
