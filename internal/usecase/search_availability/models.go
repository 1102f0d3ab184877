package search_availability

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// Request модель запроса поиска доступности
type Request struct {
	BranchID int64                  // ID филиала
	Modality domain.Modality        // Активный тариф
	Input    domain.RawBookingInput // Сырые поля формы
}

// Response модель ответа с каноничным окном и предложениями
type Response struct {
	BranchID int64
	Modality domain.Modality
	CheckIn  time.Time
	CheckOut time.Time // каноничный EffectiveCheckOut
	Hours    *int
	Offers   []Offer
}

// Offer предложение по типу номера от сервиса доступности
type Offer struct {
	RoomTypeID     int64
	RoomTypeName   string
	AvailableRooms int
	TotalPrice     float64
	Currency       string
}
