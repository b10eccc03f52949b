package update_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до открытия транзакции - некорректный запрос не трогает БД
func validateRequest(req *Request, now time.Time) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.Purpose != nil && len(*req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if req.Status != nil && !domain.BookingStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	return validateInterval(domain.NewInterval(req.StartTime, req.EndTime), now)
}

// validateInterval проверяет интервал и транслирует доменные ошибки
// в ошибки usecase
func validateInterval(interval domain.Interval, now time.Time) error {
	err := interval.Validate(now)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidInterval):
		return fmt.Errorf("%w: start must be before end", ErrInvalidInterval)
	case errors.Is(err, domain.ErrPastStart):
		return fmt.Errorf("%w: start must not be before now", ErrPastStart)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
}
