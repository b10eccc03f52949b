package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-RoomReservationService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID    string  `json:"roomId"`
	StartTime string  `json:"startTime"` // RFC 3339, например "2025-10-15T10:00:00Z"
	EndTime   string  `json:"endTime"`   // RFC 3339
	Purpose   *string `json:"purpose,omitempty"`
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
// Временные метки парсятся из RFC 3339 и нормализуются в UTC
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:    r.RoomID,
		UserID:    userID,
		StartTime: startTime.UTC(),
		EndTime:   endTime.UTC(),
		Purpose:   r.Purpose,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
