package booking

import (
	"github.com/m04kA/SMC-RoomReservationService/pkg/dbmetrics"
)

// DBExecutor переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
