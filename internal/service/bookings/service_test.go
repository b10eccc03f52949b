package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
)

// fakeRepo хранит бронирования в памяти
type fakeRepo struct {
	bookings map[string]*domain.Booking

	getErr    error
	listErr   error
	deleteErr error
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	m := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeRepo{bookings: m}
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var found []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		found = append(found, &copied)
	}
	return found, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string, userID string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID {
		return 0, nil
	}
	delete(f.bookings, id)
	return 1, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func booking(id, userID string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		RoomID:    "room-1",
		UserID:    userID,
		StartTime: testNow.Add(1 * time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
		Status:    status,
	}
}

func TestGetByID_Success(t *testing.T) {
	svc := NewService(newFakeRepo(booking("b-1", "user-1", domain.StatusConfirmed)), nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b-404", "user-1")

	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
	assert.Nil(t, resp)
}

// Чужое бронирование неотличимо от несуществующего
func TestGetByID_ForeignBooking(t *testing.T) {
	svc := NewService(newFakeRepo(booking("b-1", "user-1", domain.StatusConfirmed)), nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b-1", "user-2")

	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
	assert.Nil(t, resp)
}

func TestGetByID_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("connection reset")
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b-1", "user-1")

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestGetUserBookings_All(t *testing.T) {
	svc := NewService(newFakeRepo(
		booking("b-1", "user-1", domain.StatusConfirmed),
		booking("b-2", "user-1", domain.StatusCancelled),
		booking("b-3", "user-2", domain.StatusConfirmed),
	), nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-1"})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	svc := NewService(newFakeRepo(
		booking("b-1", "user-1", domain.StatusConfirmed),
		booking("b-2", "user-1", domain.StatusCancelled),
	), nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b-1", resp.Bookings[0].ID)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("archived"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestGetUserBookings_EmptyResult(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-1"})

	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
	assert.NotNil(t, resp.Bookings)
}

func TestCancel_Success(t *testing.T) {
	repo := newFakeRepo(booking("b-1", "user-1", domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "b-1", "user-1")

	require.NoError(t, err)
	assert.Empty(t, repo.bookings)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), "b-404", "user-1")

	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
}

func TestCancel_ForeignBooking(t *testing.T) {
	repo := newFakeRepo(booking("b-1", "user-1", domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "b-1", "user-2")

	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
	// Бронирование осталось на месте
	assert.Len(t, repo.bookings, 1)
}

// Повторная отмена детерминированно возвращает ту же ошибку
func TestCancel_RepeatedCancelIsStable(t *testing.T) {
	repo := newFakeRepo(booking("b-1", "user-1", domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), "b-1", "user-1"))

	err1 := svc.Cancel(context.Background(), "b-1", "user-1")
	err2 := svc.Cancel(context.Background(), "b-1", "user-1")

	assert.ErrorIs(t, err1, ErrNotFoundOrForbidden)
	assert.ErrorIs(t, err2, ErrNotFoundOrForbidden)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.deleteErr = errors.New("connection reset")
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "b-1", "user-1")

	assert.ErrorIs(t, err, ErrInternal)
}
