package window

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/window/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
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

func newTestService(now time.Time) *Service {
	svc := NewService(nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestService_Resolve_Hourly(t *testing.T) {
	svc := newTestService(time.Now())

	resp, err := svc.Resolve(context.Background(), &models.ResolveRequest{
		Modality:      "hourly",
		Date:          "2026-03-10",
		CheckInTime:   ptr.Ptr("15:00"),
		DurationHours: ptr.Ptr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, "hourly", resp.Modality)
	assert.Equal(t, "2026-03-10T15:00:00Z", resp.CheckIn)
	assert.Equal(t, "2026-03-10T18:00:00Z", resp.CheckOut)
	require.NotNil(t, resp.Hours)
	assert.Equal(t, 3, *resp.Hours)
}

func TestService_Resolve_Overnight_DropsStaleFields(t *testing.T) {
	svc := newTestService(time.Now())

	// Поля других тарифов остались в форме после переключения
	resp, err := svc.Resolve(context.Background(), &models.ResolveRequest{
		Modality:      "overnight",
		Date:          "2026-03-10",
		EndDate:       ptr.Ptr("2026-03-09"),
		CheckInTime:   ptr.Ptr("15:00"),
		DurationHours: ptr.Ptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10T21:00:00Z", resp.CheckIn)
	assert.Equal(t, "2026-03-11T12:00:00Z", resp.CheckOut)
	assert.Nil(t, resp.Hours)
}

func TestService_Resolve_Daily(t *testing.T) {
	svc := newTestService(time.Now())

	resp, err := svc.Resolve(context.Background(), &models.ResolveRequest{
		Modality: "daily",
		Date:     "2026-03-10",
		EndDate:  ptr.Ptr("2026-03-13"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10T14:00:00Z", resp.CheckIn)
	assert.Equal(t, "2026-03-13T12:00:00Z", resp.CheckOut)
}

func TestService_Resolve_Incomplete(t *testing.T) {
	svc := newTestService(time.Now())

	// Почасовой тариф без времени заезда
	_, err := svc.Resolve(context.Background(), &models.ResolveRequest{
		Modality:      "hourly",
		Date:          "2026-03-10",
		DurationHours: ptr.Ptr(2),
	})
	assert.ErrorIs(t, err, ErrIncompleteInput)

	// Посуточный тариф с датой выезда не позже даты заезда
	_, err = svc.Resolve(context.Background(), &models.ResolveRequest{
		Modality: "daily",
		Date:     "2026-03-10",
		EndDate:  ptr.Ptr("2026-03-10"),
	})
	assert.ErrorIs(t, err, ErrIncompleteInput)
}

func TestService_Resolve_InvalidInput(t *testing.T) {
	svc := newTestService(time.Now())

	// Неизвестный тариф
	_, err := svc.Resolve(context.Background(), &models.ResolveRequest{
		Modality: "weekly",
		Date:     "2026-03-10",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Нечитаемая дата
	_, err = svc.Resolve(context.Background(), &models.ResolveRequest{
		Modality: "overnight",
		Date:     "10.03.2026",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Нечитаемое время заезда
	_, err = svc.Resolve(context.Background(), &models.ResolveRequest{
		Modality:      "hourly",
		Date:          "2026-03-10",
		CheckInTime:   ptr.Ptr("15-00"),
		DurationHours: ptr.Ptr(2),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Options(t *testing.T) {
	svc := newTestService(time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC))

	opts := svc.Options(context.Background())

	assert.Equal(t, []string{"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00"}, opts.CheckInTimes)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, opts.DurationHours)
	assert.Equal(t, "2026-03-10", opts.DefaultDate)
	assert.Equal(t, "15:00", opts.DefaultCheckInTime)
}

func TestService_Options_RollsToTomorrow(t *testing.T) {
	svc := newTestService(time.Date(2026, 3, 10, 21, 30, 0, 0, time.UTC))

	opts := svc.Options(context.Background())

	assert.Equal(t, "2026-03-11", opts.DefaultDate)
	assert.Equal(t, "13:00", opts.DefaultCheckInTime)
}
