package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
	"github.com/m04kA/SMC-RoomReservationService/pkg/txmanager"
)

// ---------------------------------------------------------------------------
// Фейки
// ---------------------------------------------------------------------------

// fakeBookingRepo хранит бронирования в памяти и реализует тот же
// оверлап-предикат, что и SQL-репозиторий
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking

	createErr   error
	overlapsErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	stored := *booking
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	f.bookings = append(f.bookings, &stored)

	result := stored
	return &result, nil
}

func (f *fakeBookingRepo) FindBlockingOverlaps(_ context.Context, roomID string, interval domain.Interval, excludeID *string) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.overlapsErr != nil {
		return nil, f.overlapsErr
	}

	var found []*domain.Booking
	for _, b := range f.bookings {
		if b.RoomID != roomID || !b.Blocks() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Interval().Overlaps(interval) {
			found = append(found, b)
		}
	}
	return found, nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakeRoomRepo struct {
	rooms map[string]bool
	err   error
}

func (f *fakeRoomRepo) Exists(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.rooms[id], nil
}

// fakeTxManager сериализует транзакции мьютексом - моделирует serializable
// изоляцию: конкурирующие юниты работы выполняются строго по очереди.
// Счетчики фиксируют, через какой метод прошел юнит работы
type fakeTxManager struct {
	mu  sync.Mutex
	err error

	doCalls           int
	serializableCalls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.doCalls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.serializableCalls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ---------------------------------------------------------------------------
// Хелперы
// ---------------------------------------------------------------------------

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(bookingRepo *fakeBookingRepo, roomRepo *fakeRoomRepo, txMgr *fakeTxManager) *UseCase {
	uc := NewUseCase(bookingRepo, roomRepo, txMgr, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		RoomID:    "room-1",
		UserID:    "user-1",
		StartTime: testNow.Add(1 * time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
		Purpose:   ptr.Ptr("Планёрка"),
	}
}

// ---------------------------------------------------------------------------
// Тесты
// ---------------------------------------------------------------------------

func TestExecute_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	roomRepo := &fakeRoomRepo{rooms: map[string]bool{"room-1": true}}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(bookingRepo, roomRepo, txMgr)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "room-1", resp.RoomID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, bookingRepo.count())
}

// Проверка конфликтов обязана идти через serializable транзакцию:
// FOR UPDATE не блокирует пустой диапазон скана, и на read committed
// две вставки в свободный слот прошли бы обе
func TestExecute_RunsInSerializableTransaction(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	roomRepo := &fakeRoomRepo{rooms: map[string]bool{"room-1": true}}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(bookingRepo, roomRepo, txMgr)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, txMgr.serializableCalls)
	assert.Equal(t, 0, txMgr.doCalls)
}

func TestExecute_RoomNotFound(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	roomRepo := &fakeRoomRepo{rooms: map[string]bool{}}
	uc := newTestUseCase(bookingRepo, roomRepo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, resp)
	assert.Equal(t, 0, bookingRepo.count())
}

func TestExecute_TimeConflict(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:        "existing-1",
				RoomID:    "room-1",
				UserID:    "user-2",
				StartTime: testNow.Add(90 * time.Minute),
				EndTime:   testNow.Add(3 * time.Hour),
				Status:    domain.StatusConfirmed,
			},
		},
	}
	roomRepo := &fakeRoomRepo{rooms: map[string]bool{"room-1": true}}
	uc := newTestUseCase(bookingRepo, roomRepo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Nil(t, resp)
	assert.Equal(t, 1, bookingRepo.count())
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:        "cancelled-1",
				RoomID:    "room-1",
				UserID:    "user-2",
				StartTime: testNow.Add(1 * time.Hour),
				EndTime:   testNow.Add(2 * time.Hour),
				Status:    domain.StatusCancelled,
			},
		},
	}
	roomRepo := &fakeRoomRepo{rooms: map[string]bool{"room-1": true}}
	uc := newTestUseCase(bookingRepo, roomRepo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 2, bookingRepo.count())
}

func TestExecute_AdjacentIntervalSucceeds(t *testing.T) {
	// Полуоткрытые интервалы: [10:00, 11:00) и [11:00, 12:00) не пересекаются
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:        "existing-1",
				RoomID:    "room-1",
				UserID:    "user-2",
				StartTime: testNow.Add(2 * time.Hour),
				EndTime:   testNow.Add(3 * time.Hour),
				Status:    domain.StatusConfirmed,
			},
		},
	}
	roomRepo := &fakeRoomRepo{rooms: map[string]bool{"room-1": true}}
	uc := newTestUseCase(bookingRepo, roomRepo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "empty room id",
			mutate:  func(req *Request) { req.RoomID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty user id",
			mutate:  func(req *Request) { req.UserID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "start equals end",
			mutate: func(req *Request) {
				req.EndTime = req.StartTime
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "start after end",
			mutate: func(req *Request) {
				req.StartTime, req.EndTime = req.EndTime, req.StartTime
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "start in the past",
			mutate: func(req *Request) {
				req.StartTime = testNow.Add(-1 * time.Hour)
			},
			wantErr: ErrPastStart,
		},
		{
			name: "purpose too long",
			mutate: func(req *Request) {
				long := make([]byte, domain.MaxPurposeLength+1)
				for i := range long {
					long[i] = 'a'
				}
				req.Purpose = ptr.Ptr(string(long))
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &fakeBookingRepo{}
			roomRepo := &fakeRoomRepo{rooms: map[string]bool{"room-1": true}}
			uc := newTestUseCase(bookingRepo, roomRepo, &fakeTxManager{})

			req := validRequest()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			// Невалидный запрос не должен трогать хранилище
			assert.Equal(t, 0, bookingRepo.count())
		})
	}
}

func TestExecute_StoreUnavailable(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	roomRepo := &fakeRoomRepo{rooms: map[string]bool{"room-1": true}}
	txMgr := &fakeTxManager{
		err: fmt.Errorf("%w: deadlock detected", txmanager.ErrStoreUnavailable),
	}
	uc := newTestUseCase(bookingRepo, roomRepo, txMgr)

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, resp)
}

// TestExecute_ConcurrentRequestsSameSlot моделирует гонку двух клиентов
// за один слот: транзакции сериализуются, побеждает ровно один
func TestExecute_ConcurrentRequestsSameSlot(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	roomRepo := &fakeRoomRepo{rooms: map[string]bool{"room-1": true}}
	txMgr := &fakeTxManager{}

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			uc := newTestUseCase(bookingRepo, roomRepo, txMgr)
			req := validRequest()
			req.UserID = fmt.Sprintf("user-%d", n)
			_, errs[n] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var created, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case assert.ErrorIs(t, err, ErrTimeConflict):
			conflicts++
		}
	}

	assert.Equal(t, 1, created, "exactly one request must win the slot")
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, 1, bookingRepo.count())
}
