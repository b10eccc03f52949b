package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
// Создание и изменение проходят через usecases с транзакционной проверкой конфликтов
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования; чужое бронирование
// неотличимо от несуществующего
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrNotFoundOrForbidden
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: booking id=%s is not owned by user=%s", id, userID)
		return nil, ErrNotFoundOrForbidden
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя, отсортированные
// по времени начала. Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel удаляет бронирование пользователя.
// Удаление обусловлено владением на уровне запроса: ноль затронутых строк
// означает "не найдено или чужое" - оба случая дают один и тот же ответ.
// Отмена лишь снимает ограничение, поэтому блокировки не нужны, а повторная
// отмена того же ID безвредна и детерминированно возвращает ту же ошибку
func (s *Service) Cancel(ctx context.Context, bookingID string, userID string) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, userID)

	affected, err := s.bookingRepo.Delete(ctx, bookingID, userID)
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if affected == 0 {
		s.logger.Warn("Cancel: booking id=%s not found or not owned by user=%s", bookingID, userID)
		return ErrNotFoundOrForbidden
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}
