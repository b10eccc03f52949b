package update_booking

import "time"

// Request модель запроса на изменение бронирования
type Request struct {
	BookingID string    // ID изменяемого бронирования
	UserID    string    // ID пользователя (только владелец может изменять)
	RoomID    string    // ID комнаты (может отличаться от текущей)
	StartTime time.Time // Новое начало интервала (включительно)
	EndTime   time.Time // Новый конец интервала (исключительно)
	Purpose   *string   // Цель бронирования (опционально)
	Status    *string   // Переопределение статуса (опционально, по умолчанию без изменений)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        string    // ID бронирования
	RoomID    string    // ID комнаты
	UserID    string    // ID пользователя
	StartTime time.Time // Начало интервала
	EndTime   time.Time // Конец интервала
	Purpose   *string   // Цель бронирования
	Status    string    // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
