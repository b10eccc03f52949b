package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomReservationService/pkg/txmanager"
)

// UseCase use case изменения бронирования
//
// Та же транзакционная дисциплина, что и при создании, плюс две особенности:
// бронирование должно принадлежать пользователю, а из блокирующего поиска
// пересечений исключается собственная строка - новый интервал не должен
// конфликтовать со своим же прежним
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case изменения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%s, user=%s, room=%s, interval=[%s, %s)",
		req.BookingID, req.UserID, req.RoomID, req.StartTime.Format(timeFormat), req.EndTime.Format(timeFormat))

	// 1. Валидация входных данных (до открытия транзакции)
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	interval := domain.NewInterval(req.StartTime, req.EndTime)

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Проверки и обновление - атомарно, в одной serializable транзакции.
	// Как и при создании, FOR UPDATE не блокирует пустой диапазон скана,
	// поэтому перенос в свободный слот защищен уровнем изоляции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование (строка блокируется внутри транзакции)
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%s not found", req.BookingID)
				return ErrNotFoundOrForbidden
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Изменять бронирование может только владелец
		// Отсутствие и чужое бронирование выглядят одинаково
		if !current.IsOwnedBy(req.UserID) {
			uc.logger.Warn("UpdateBooking: booking id=%s is not owned by user=%s", req.BookingID, req.UserID)
			return ErrNotFoundOrForbidden
		}

		// 2.3. Проверяем существование целевой комнаты
		exists, err := uc.roomRepo.Exists(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to check room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to check room: %v", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("UpdateBooking: room id=%s not found", req.RoomID)
			return ErrRoomNotFound
		}

		// 2.4. Блокирующий поиск пересечений, исключая собственную строку
		overlaps, err := uc.bookingRepo.FindBlockingOverlaps(txCtx, req.RoomID, interval, &req.BookingID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to find overlaps for room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to find overlaps: %v", ErrInternal, err)
		}
		if len(overlaps) > 0 {
			uc.logger.Warn("UpdateBooking: room id=%s has %d overlapping booking(s), first=%s",
				req.RoomID, len(overlaps), overlaps[0].ID)
			return ErrTimeConflict
		}

		// 2.5. Применяем изменения; статус меняется только если передан явно
		updated := *current
		updated.RoomID = req.RoomID
		updated.StartTime = interval.Start
		updated.EndTime = interval.End
		updated.Purpose = req.Purpose
		if req.Status != nil {
			updated.Status = domain.BookingStatus(*req.Status)
		}

		if err := uc.bookingRepo.Update(txCtx, &updated); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrNotFoundOrForbidden
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = &updated
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrStoreUnavailable) {
			uc.logger.Error("UpdateBooking: store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", result.ID)

	// Конвертируем в response
	return &Response{
		ID:        result.ID,
		RoomID:    result.RoomID,
		UserID:    result.UserID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Purpose:   result.Purpose,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// timeFormat формат временных меток в логах
const timeFormat = "2006-01-02T15:04:05Z07:00"
