package get_timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	bookings []*domain.BookingInterval
	err      error
}

func (r *fakeBookingRepo) ListByBranchForDay(ctx context.Context, branchID int64, day time.Time) ([]*domain.BookingInterval, error) {
	return r.bookings, r.err
}

type fakeRoomRepo struct {
	rooms []domain.Room
	err   error
}

func (r *fakeRoomRepo) ListByBranch(ctx context.Context, branchID int64) ([]domain.Room, error) {
	return r.rooms, r.err
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func newTestUseCase(rooms []domain.Room, bookings []*domain.BookingInterval, now time.Time) *UseCase {
	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeRoomRepo{rooms: rooms}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_Timeline(t *testing.T) {
	day := date(2026, 3, 10)

	rooms := []domain.Room{
		{ID: 1, BranchID: 7, Number: "101", TypeID: 1, TypeName: "Стандарт"},
		{ID: 2, BranchID: 7, Number: "102", TypeID: 1, TypeName: "Стандарт"},
		{ID: 3, BranchID: 7, Number: "201", TypeID: 2, TypeName: "Люкс"},
	}

	bookings := []*domain.BookingInterval{
		{
			ID: 11, BranchID: 7, RoomID: 1, GuestName: "Иванов", Status: domain.StatusConfirmed,
			CheckIn: datetime(2026, 3, 10, 13, 0), CheckOut: datetime(2026, 3, 10, 15, 0),
		},
		{
			ID: 12, BranchID: 7, RoomID: 3, GuestName: "Петров", Status: domain.StatusCheckedIn,
			CheckIn: datetime(2026, 3, 10, 21, 0), CheckOut: datetime(2026, 3, 11, 12, 0),
		},
	}

	uc := newTestUseCase(rooms, bookings, datetime(2026, 3, 10, 16, 30))

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, BranchID: 7, Date: day})
	require.NoError(t, err)

	// Группы в порядке первого появления типа
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "Стандарт", resp.Groups[0].TypeName)
	assert.Equal(t, "Люкс", resp.Groups[1].TypeName)
	require.Len(t, resp.Groups[0].Rooms, 2)

	// Полоса дневного бронирования: колонки 3-5
	require.Len(t, resp.Groups[0].Rooms[0].Bars, 1)
	bar := resp.Groups[0].Rooms[0].Bars[0]
	assert.Equal(t, int64(11), bar.BookingID)
	assert.InDelta(t, float64(2)/12*100, bar.Position.LeftPercent, 0.01)
	assert.InDelta(t, float64(2)/12*100, bar.Position.WidthPercent, 0.01)

	// Номер без бронирований — без полос
	assert.Empty(t, resp.Groups[0].Rooms[1].Bars)

	// Ночёвка прижата к sentinel-границе
	require.Len(t, resp.Groups[1].Rooms[0].Bars, 1)
	overnight := resp.Groups[1].Rooms[0].Bars[0]
	assert.InDelta(t, float64(10)/12*100, overnight.Position.LeftPercent, 0.01)
	assert.InDelta(t, float64(2)/12*100, overnight.Position.WidthPercent, 0.01)

	// Маркер текущего времени: 16:30 — середина окна 11:00-22:00
	assert.True(t, resp.Now.Visible)
	assert.InDelta(t, 50, resp.Now.Percent, 0.01)
}

func TestExecute_NowHiddenOnOtherDay(t *testing.T) {
	uc := newTestUseCase(nil, nil, datetime(2026, 3, 11, 16, 0))

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, BranchID: 7, Date: date(2026, 3, 10)})
	require.NoError(t, err)

	assert.False(t, resp.Now.Visible)
}

func TestExecute_SkipsInactiveBookings(t *testing.T) {
	day := date(2026, 3, 10)
	rooms := []domain.Room{{ID: 1, BranchID: 7, Number: "101", TypeID: 1, TypeName: "Стандарт"}}
	bookings := []*domain.BookingInterval{
		{
			ID: 11, RoomID: 1, Status: domain.StatusCancelledByGuest,
			CheckIn: datetime(2026, 3, 10, 13, 0), CheckOut: datetime(2026, 3, 10, 15, 0),
		},
	}

	uc := newTestUseCase(rooms, bookings, datetime(2026, 3, 10, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, BranchID: 7, Date: day})
	require.NoError(t, err)

	assert.Empty(t, resp.Groups[0].Rooms[0].Bars)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(nil, nil, time.Now())

	_, err := uc.Execute(context.Background(), &Request{BranchID: 0, Date: date(2026, 3, 10)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BranchID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrors(t *testing.T) {
	day := date(2026, 3, 10)

	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{err: errors.New("db down")}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{UserID: 1, BranchID: 7, Date: day})
	assert.ErrorIs(t, err, ErrInternal)

	uc = NewUseCase(&fakeBookingRepo{err: errors.New("db down")}, &fakeRoomRepo{}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{UserID: 1, BranchID: 7, Date: day})
	assert.ErrorIs(t, err, ErrInternal)
}
