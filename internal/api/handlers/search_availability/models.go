package search_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	searchAvailability "github.com/m04kA/SMC-HotelBookingService/internal/usecase/search_availability"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BranchID int64   `json:"branchId"`
	Modality string  `json:"modality"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	Hours    *int    `json:"hours,omitempty"`
	Offers   []Offer `json:"offers"`
}

// Offer предложение по типу номера
type Offer struct {
	RoomTypeID     int64   `json:"roomTypeId"`
	RoomTypeName   string  `json:"roomTypeName"`
	AvailableRooms int     `json:"availableRooms"`
	TotalPrice     float64 `json:"totalPrice"`
	Currency       string  `json:"currency"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchAvailability.Response) *AvailabilityResponse {
	offers := make([]Offer, len(resp.Offers))
	for i, offer := range resp.Offers {
		offers[i] = Offer{
			RoomTypeID:     offer.RoomTypeID,
			RoomTypeName:   offer.RoomTypeName,
			AvailableRooms: offer.AvailableRooms,
			TotalPrice:     offer.TotalPrice,
			Currency:       offer.Currency,
		}
	}

	return &AvailabilityResponse{
		BranchID: resp.BranchID,
		Modality: resp.Modality.String(),
		CheckIn:  resp.CheckIn.Format(time.RFC3339),
		CheckOut: resp.CheckOut.Format(time.RFC3339),
		Hours:    resp.Hours,
		Offers:   offers,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Поля endDate, checkInTime и durationHours опциональны: какие из них
// нужны, решает тариф на этапе нормализации
func ToUseCaseRequest(branchID int64, modalityStr, dateStr, endDateStr, checkInTimeStr, durationHoursStr string) (*searchAvailability.Request, error) {
	modality, err := domain.ParseModality(modalityStr)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	input := domain.RawBookingInput{Date: date}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		input.EndDate = &endDate
	}

	if checkInTimeStr != "" {
		checkInTime, err := types.NewTimeStringFromString(checkInTimeStr)
		if err != nil {
			return nil, err
		}
		input.CheckInTime = &checkInTime
	}

	if durationHoursStr != "" {
		hours, err := strconv.Atoi(durationHoursStr)
		if err != nil {
			return nil, err
		}
		input.DurationHours = &hours
	}

	return &searchAvailability.Request{
		BranchID: branchID,
		Modality: modality,
		Input:    input,
	}, nil
}
