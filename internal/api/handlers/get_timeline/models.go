package get_timeline

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	getTimeline "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_timeline"
)

// TimelineResponse HTTP response model
type TimelineResponse struct {
	BranchID int64         `json:"branchId"`
	Date     string        `json:"date"`
	Groups   []RoomGroup   `json:"groups"`
	Now      *NowIndicator `json:"now,omitempty"`
}

// RoomGroup группа номеров одного типа
type RoomGroup struct {
	TypeName string `json:"typeName"`
	Rooms    []Room `json:"rooms"`
}

// Room номер с полосами бронирований
type Room struct {
	ID     int64        `json:"id"`
	Number string       `json:"number"`
	Bars   []BookingBar `json:"bars"`
}

// BookingBar полоса бронирования на сетке таймлайна
type BookingBar struct {
	BookingID    int64   `json:"bookingId"`
	GuestName    string  `json:"guestName"`
	Status       string  `json:"status"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// NowIndicator маркер текущего времени; отдается только когда виден
type NowIndicator struct {
	Percent float64 `json:"percent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeline.Response) *TimelineResponse {
	groups := make([]RoomGroup, len(resp.Groups))
	for i, group := range resp.Groups {
		rooms := make([]Room, len(group.Rooms))
		for j, room := range group.Rooms {
			bars := make([]BookingBar, len(room.Bars))
			for k, bar := range room.Bars {
				bars[k] = BookingBar{
					BookingID:    bar.BookingID,
					GuestName:    bar.GuestName,
					Status:       string(bar.Status),
					CheckIn:      bar.CheckIn.Format(time.RFC3339),
					CheckOut:     bar.CheckOut.Format(time.RFC3339),
					LeftPercent:  bar.Position.LeftPercent,
					WidthPercent: bar.Position.WidthPercent,
				}
			}
			rooms[j] = Room{
				ID:     room.ID,
				Number: room.Number,
				Bars:   bars,
			}
		}
		groups[i] = RoomGroup{
			TypeName: group.TypeName,
			Rooms:    rooms,
		}
	}

	response := &TimelineResponse{
		BranchID: resp.BranchID,
		Date:     resp.Date.Format(domain.DateFormat),
		Groups:   groups,
	}

	if resp.Now.Visible {
		response.Now = &NowIndicator{Percent: resp.Now.Percent}
	}

	return response
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID, branchID int64, dateStr string) (*getTimeline.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getTimeline.Request{
		UserID:   userID,
		BranchID: branchID,
		Date:     date,
	}, nil
}
