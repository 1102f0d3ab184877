package availability

// QuoteRequest запрос доступности и цены: каноничное окно плюс тариф.
// Даты сериализуются в RFC3339; для почасового тарифа дополнительно
// передаётся длительность в часах.
type QuoteRequest struct {
	BranchID int64  `json:"branchId"`
	Modality string `json:"modality"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Hours    *int   `json:"hours,omitempty"`
}

// RoomTypeOffer предложение сервиса доступности по одному типу номера.
// Цену считает внешний сервис, этот сервис её только транслирует.
type RoomTypeOffer struct {
	RoomTypeID     int64   `json:"roomTypeId"`
	RoomTypeName   string  `json:"roomTypeName"`
	AvailableRooms int     `json:"availableRooms"`
	TotalPrice     float64 `json:"totalPrice"`
	Currency       string  `json:"currency"`
}

// QuoteResponse ответ сервиса доступности
type QuoteResponse struct {
	BranchID int64           `json:"branchId"`
	Offers   []RoomTypeOffer `json:"offers"`
}

// ErrorResponse модель ошибки от сервиса доступности
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
