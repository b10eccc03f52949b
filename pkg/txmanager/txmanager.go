// Package txmanager управляет транзакциями БД через closure API.
//
// Юнит работы получает контекст с активной транзакцией (см. pkg/dbmetrics);
// при nil-результате транзакция коммитится, при ошибке или панике — откатывается.
// Ошибки блокировок и потери соединения приводятся к ErrStoreUnavailable,
// чтобы вызывающая сторона могла отличить retryable-сбой от бизнес-отказа.
package txmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomReservationService/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается, когда не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, когда не удалось закоммитить транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrStoreUnavailable возвращается при deadlock, таймауте блокировки,
	// serialization failure или потере соединения. Единственный retryable класс:
	// повтор обязан заново выполнить весь юнит работы, включая все проверки
	ErrStoreUnavailable = errors.New("txmanager: store unavailable")
)

// Коды ошибок PostgreSQL, которые считаем retryable
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
	pqQueryCanceled        = "57014"
)

// serializableRetries количество попыток для DoSerializable
const serializableRetries = 3

// TxBeginner интерфейс для начала транзакций
// Поддерживает *dbmetrics.DB и любую обертку с той же сигнатурой
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет юниты работы внутри транзакций
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn внутри транзакции с уровнем изоляции по умолчанию (read committed).
// Консистентность обеспечивается явными блокировками строк (SELECT ... FOR UPDATE)
// внутри самого юнита работы
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn внутри read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn внутри serializable транзакции.
// Альтернатива явным блокировкам: при serialization failure юнит работы
// перезапускается целиком (включая все проверки), до serializableRetries попыток
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < serializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// run начинает транзакцию, выполняет fn и коммитит или откатывает.
// Откат гарантирован на каждом пути выхода, включая панику
func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	tx, beginErr := m.db.BeginTx(ctx, opts)
	if beginErr != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, beginErr)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err = fn(txCtx); err != nil {
		tx.Rollback()
		return classify(err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return classify(fmt.Errorf("%w: %v", ErrCommitTx, commitErr))
	}

	return nil
}

// classify приводит инфраструктурные сбои к ErrStoreUnavailable,
// не трогая бизнес-ошибки юнита работы
func classify(err error) error {
	if isRetryable(err) {
		// Исходная ошибка остается в цепочке: DoSerializable различает
		// serialization failure по коду pq
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}

// isRetryable проверяет, относится ли ошибка к retryable классу
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqSerializationFailure, pqDeadlockDetected, pqLockNotAvailable, pqQueryCanceled:
			return true
		}
		// Класс 08 - ошибки соединения
		if len(pqErr.Code) >= 2 && string(pqErr.Code)[:2] == "08" {
			return true
		}
		return false
	}

	return errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded)
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqSerializationFailure
}
