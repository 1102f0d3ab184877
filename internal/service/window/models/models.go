package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// ResolveRequest сырые поля формы бронирования в том виде,
// в котором их прислал фронтенд
type ResolveRequest struct {
	Modality      string  `json:"modality"`
	Date          string  `json:"date"`                    // YYYY-MM-DD
	EndDate       *string `json:"endDate,omitempty"`       // YYYY-MM-DD, только daily
	CheckInTime   *string `json:"checkInTime,omitempty"`   // HH:MM, только hourly
	DurationHours *int    `json:"durationHours,omitempty"` // только hourly
}

// WindowResponse каноничное окно заезда/выезда
type WindowResponse struct {
	Modality string `json:"modality"`
	CheckIn  string `json:"checkIn"`  // RFC3339
	CheckOut string `json:"checkOut"` // RFC3339, каноничный EffectiveCheckOut
	Hours    *int   `json:"hours,omitempty"`
}

// OptionsResponse наборы-кандидаты и предзаполнение почасовой формы
type OptionsResponse struct {
	CheckInTimes       []string `json:"checkInTimes"`
	DurationHours      []int    `json:"durationHours"`
	DefaultDate        string   `json:"defaultDate"`
	DefaultCheckInTime string   `json:"defaultCheckInTime"`
}

// ToDomain парсит сырые строки запроса в доменные типы.
// Ошибки парсинга — это некорректный ввод, а не неполный:
// неполнота определяется позже, при разрешении окна.
func (r *ResolveRequest) ToDomain() (domain.Modality, domain.RawBookingInput, error) {
	modality, err := domain.ParseModality(r.Modality)
	if err != nil {
		return "", domain.RawBookingInput{}, err
	}

	var input domain.RawBookingInput

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return "", domain.RawBookingInput{}, fmt.Errorf("invalid date %q: %v", r.Date, err)
		}
		input.Date = date
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return "", domain.RawBookingInput{}, fmt.Errorf("invalid endDate %q: %v", *r.EndDate, err)
		}
		input.EndDate = &endDate
	}

	if r.CheckInTime != nil {
		checkInTime, err := types.NewTimeStringFromString(*r.CheckInTime)
		if err != nil {
			return "", domain.RawBookingInput{}, fmt.Errorf("invalid checkInTime %q: %v", *r.CheckInTime, err)
		}
		input.CheckInTime = &checkInTime
	}

	input.DurationHours = r.DurationHours

	return modality, input, nil
}

// FromDomainWindow конвертирует каноничное окно в модель ответа
func FromDomainWindow(m domain.Modality, w domain.TimeWindow) *WindowResponse {
	return &WindowResponse{
		Modality: m.String(),
		CheckIn:  w.CheckIn.Format(time.RFC3339),
		CheckOut: w.EffectiveCheckOut().Format(time.RFC3339),
		Hours:    w.Hours,
	}
}

// BuildOptions собирает ответ с кандидатами и предзаполнением
func BuildOptions(now time.Time) *OptionsResponse {
	defaultDate, defaultTime := domain.DefaultHourlyInput(now)

	checkInTimes := make([]string, 0)
	for _, ts := range domain.HourlyCheckInTimes() {
		checkInTimes = append(checkInTimes, ts.String())
	}

	return &OptionsResponse{
		CheckInTimes:       checkInTimes,
		DurationHours:      domain.HourlyDurations(),
		DefaultDate:        defaultDate.Format(domain.DateFormat),
		DefaultCheckInTime: defaultTime.String(),
	}
}
