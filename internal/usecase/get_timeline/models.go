package get_timeline

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// Request модель запроса штабного таймлайна
type Request struct {
	UserID   int64     // ID сотрудника (для логирования, не влияет на результат)
	BranchID int64     // ID филиала
	Date     time.Time // Просматриваемый день (без времени)
}

// Response модель ответа: группы номеров с полосами бронирований
// и маркером текущего времени
type Response struct {
	BranchID int64
	Date     time.Time
	Groups   []RoomGroup
	Now      domain.NowIndicator
}

// RoomGroup группа номеров одного типа в порядке отображения
type RoomGroup struct {
	TypeName string
	Rooms    []Room
}

// Room номер с полосами бронирований на просматриваемый день
type Room struct {
	ID     int64
	Number string
	Bars   []BookingBar
}

// BookingBar бронирование, спроецированное на сетку таймлайна
type BookingBar struct {
	BookingID int64
	GuestName string
	Status    domain.BookingStatus
	CheckIn   time.Time
	CheckOut  time.Time
	Position  domain.GridPosition
}
