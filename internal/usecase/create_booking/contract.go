package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindBlockingOverlaps(ctx context.Context, roomID string, interval domain.Interval, excludeID *string) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
// Проверка конфликтов требует serializable изоляции: read committed
// с FOR UPDATE не сериализует вставки в свободный слот
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
