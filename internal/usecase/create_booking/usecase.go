package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/txmanager"
)

// UseCase use case создания бронирования
//
// Алгоритм разрешения конфликтов: внутри одной транзакции проверяется
// существование комнаты, затем блокирующим запросом (FOR UPDATE) ищутся
// пересекающиеся подтвержденные бронирования, и только при их отсутствии
// вставляется новая строка. Из двух конкурентных запросов на пересекающиеся
// интервалы закоммитится ровно один
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

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, room=%s, interval=[%s, %s)",
		req.UserID, req.RoomID, req.StartTime.Format(timeFormat), req.EndTime.Format(timeFormat))

	// 1. Валидация входных данных (до открытия транзакции)
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	interval := domain.NewInterval(req.StartTime, req.EndTime)

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Проверка комнаты, блокирующий поиск пересечений и вставка -
	// атомарно, в одной serializable транзакции. FOR UPDATE блокирует только
	// найденные строки: при пустом результате скана блокировать нечего, и две
	// параллельные вставки в свободный слот не видят друг друга. Serializable
	// изоляция закрывает эту дыру - проигравшая транзакция получает
	// serialization failure, перезапускается и находит конфликт
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем существование комнаты
		exists, err := uc.roomRepo.Exists(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to check room: %v", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return ErrRoomNotFound
		}

		// 2.2. Ищем пересекающиеся подтвержденные бронирования с блокировкой строк
		overlaps, err := uc.bookingRepo.FindBlockingOverlaps(txCtx, req.RoomID, interval, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find overlaps for room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to find overlaps: %v", ErrInternal, err)
		}
		if len(overlaps) > 0 {
			uc.logger.Warn("CreateBooking: room id=%s has %d overlapping booking(s), first=%s",
				req.RoomID, len(overlaps), overlaps[0].ID)
			return ErrTimeConflict
		}

		// 2.3. Конфликтов нет - вставляем бронирование со статусом confirmed
		booking := &domain.Booking{
			ID:        uuid.NewString(),
			RoomID:    req.RoomID,
			UserID:    req.UserID,
			StartTime: interval.Start,
			EndTime:   interval.End,
			Purpose:   req.Purpose,
			Status:    domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Retryable сбои хранилища отделяем от бизнес-отказов:
		// клиент может повторить запрос, проверки будут выполнены заново
		if errors.Is(err, txmanager.ErrStoreUnavailable) {
			uc.logger.Error("CreateBooking: store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

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
