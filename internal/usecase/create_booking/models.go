package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	RoomID    string    // ID комнаты
	UserID    string    // ID пользователя (из аутентифицированной сессии)
	StartTime time.Time // Начало интервала (включительно)
	EndTime   time.Time // Конец интервала (исключительно)
	Purpose   *string   // Цель бронирования (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string    // ID созданного бронирования
	RoomID    string    // ID комнаты
	UserID    string    // ID пользователя
	StartTime time.Time // Начало интервала
	EndTime   time.Time // Конец интервала
	Purpose   *string   // Цель бронирования
	Status    string    // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
