package get_timeline

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// UseCase use case штабного таймлайна: собирает номера филиала,
// группирует их по типу и проецирует бронирования просматриваемого дня
// на фиксированную 12-колоночную сетку
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения таймлайна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeline: user=%d, branch=%d, date=%s",
		req.UserID, req.BranchID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimeline: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время для маркера "сейчас"
	now := uc.timeProvider.Now()

	// 3. Получаем номера филиала
	rooms, err := uc.roomRepo.ListByBranch(ctx, req.BranchID)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to list rooms for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования, пересекающие просматриваемый день
	bookings, err := uc.bookingRepo.ListByBranchForDay(ctx, req.BranchID, req.Date)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to list bookings for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 5. Индексируем бронирования по номеру
	barsByRoom := make(map[int64][]BookingBar, len(bookings))
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		barsByRoom[booking.RoomID] = append(barsByRoom[booking.RoomID], BookingBar{
			BookingID: booking.ID,
			GuestName: booking.GuestName,
			Status:    booking.Status,
			CheckIn:   booking.CheckIn,
			CheckOut:  booking.CheckOut,
			Position:  domain.ProjectToGrid(*booking, req.Date),
		})
	}

	// 6. Группируем номера по типу, сохраняя порядок отображения
	groups := make([]RoomGroup, 0)
	for _, group := range domain.GroupRoomsByType(rooms) {
		respGroup := RoomGroup{TypeName: group.TypeName}
		for _, room := range group.Rooms {
			respGroup.Rooms = append(respGroup.Rooms, Room{
				ID:     room.ID,
				Number: room.Number,
				Bars:   barsByRoom[room.ID],
			})
		}
		groups = append(groups, respGroup)
	}

	uc.logger.Info("GetTimeline: branch=%d, date=%s, rooms=%d, bookings=%d",
		req.BranchID, req.Date.Format(domain.DateFormat), len(rooms), len(bookings))

	return &Response{
		BranchID: req.BranchID,
		Date:     req.Date,
		Groups:   groups,
		Now:      domain.NowIndicatorAt(now, req.Date),
	}, nil
}
