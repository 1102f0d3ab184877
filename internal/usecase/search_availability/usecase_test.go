package search_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/availability"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	lastRequest *availability.QuoteRequest
	response    *availability.QuoteResponse
	err         error
}

func (c *fakeClient) Quote(ctx context.Context, req availability.QuoteRequest) (*availability.QuoteResponse, error) {
	c.lastRequest = &req
	if c.err != nil {
		return nil, c.err
	}
	return c.response, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timeStr(t *testing.T, s string) *types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return &ts
}

func TestExecute_Overnight(t *testing.T) {
	client := &fakeClient{
		response: &availability.QuoteResponse{
			BranchID: 7,
			Offers: []availability.RoomTypeOffer{
				{RoomTypeID: 1, RoomTypeName: "Стандарт", AvailableRooms: 3, TotalPrice: 4500, Currency: "RUB"},
			},
		},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Modality: domain.ModalityOvernight,
		Input:    domain.RawBookingInput{Date: date(2026, 3, 10)},
	})

	require.NoError(t, err)

	// Каноничное окно сериализовано в запрос к сервису доступности
	require.NotNil(t, client.lastRequest)
	assert.Equal(t, int64(7), client.lastRequest.BranchID)
	assert.Equal(t, "overnight", client.lastRequest.Modality)
	assert.Equal(t, "2026-03-10T21:00:00Z", client.lastRequest.CheckIn)
	assert.Equal(t, "2026-03-11T12:00:00Z", client.lastRequest.CheckOut)
	assert.Nil(t, client.lastRequest.Hours)

	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "Стандарт", resp.Offers[0].RoomTypeName)
}

func TestExecute_Hourly_SendsHours(t *testing.T) {
	client := &fakeClient{response: &availability.QuoteResponse{BranchID: 7}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Modality: domain.ModalityHourly,
		Input: domain.RawBookingInput{
			Date:          date(2026, 3, 10),
			CheckInTime:   timeStr(t, "15:00"),
			DurationHours: ptr.Ptr(2),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10T15:00:00Z", client.lastRequest.CheckIn)
	assert.Equal(t, "2026-03-10T17:00:00Z", client.lastRequest.CheckOut)
	require.NotNil(t, client.lastRequest.Hours)
	assert.Equal(t, 2, *client.lastRequest.Hours)
	assert.Equal(t, resp.CheckIn.Add(2*time.Hour), resp.CheckOut)
}

func TestExecute_IncompleteInput_SkipsQuote(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Modality: domain.ModalityDaily,
		Input:    domain.RawBookingInput{Date: date(2026, 3, 10)}, // нет даты выезда
	})

	assert.ErrorIs(t, err, ErrIncompleteInput)
	assert.Nil(t, client.lastRequest, "неполный ввод не должен приводить к запросу доступности")
}

func TestExecute_StaleFieldsNormalized(t *testing.T) {
	client := &fakeClient{response: &availability.QuoteResponse{BranchID: 7}}
	uc := NewUseCase(client, nopLogger{})

	// Дата выезда не позже даты заезда осталась от предыдущего выбора:
	// для daily она сбрасывается, и результат — неполный ввод
	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Modality: domain.ModalityDaily,
		Input: domain.RawBookingInput{
			Date:    date(2026, 3, 10),
			EndDate: ptr.Ptr(date(2026, 3, 9)),
		},
	})

	assert.ErrorIs(t, err, ErrIncompleteInput)
	assert.Nil(t, client.lastRequest)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 0,
		Modality: domain.ModalityOvernight,
		Input:    domain.RawBookingInput{Date: date(2026, 3, 10)},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Modality: domain.Modality("weekly"),
		Input:    domain.RawBookingInput{Date: date(2026, 3, 10)},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BranchNotFound(t *testing.T) {
	client := &fakeClient{err: availability.ErrBranchNotFound}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 404,
		Modality: domain.ModalityOvernight,
		Input:    domain.RawBookingInput{Date: date(2026, 3, 10)},
	})

	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Modality: domain.ModalityOvernight,
		Input:    domain.RawBookingInput{Date: date(2026, 3, 10)},
	})

	assert.ErrorIs(t, err, ErrInternal)
}
