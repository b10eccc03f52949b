package update_booking

import (
	"time"

	updateBooking "github.com/m04kA/SMC-RoomReservationService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	RoomID    string  `json:"roomId"`
	StartTime string  `json:"startTime"` // RFC 3339
	EndTime   string  `json:"endTime"`   // RFC 3339
	Purpose   *string `json:"purpose,omitempty"`
	Status    *string `json:"status,omitempty"` // confirmed | pending | cancelled
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string  `json:"id"`
	RoomID    string  `json:"roomId"`
	UserID    string  `json:"userId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Purpose   *string `json:"purpose,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, userID string) (*updateBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		RoomID:    r.RoomID,
		StartTime: startTime.UTC(),
		EndTime:   endTime.UTC(),
		Purpose:   r.Purpose,
		Status:    r.Status,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		UserID:    resp.UserID,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Purpose:   resp.Purpose,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
