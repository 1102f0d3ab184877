package get_timeline

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListByBranchForDay возвращает активные бронирования филиала,
	// пересекающие видимое окно просматриваемого дня
	ListByBranchForDay(ctx context.Context, branchID int64, day time.Time) ([]*domain.BookingInterval, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	ListByBranch(ctx context.Context, branchID int64) ([]domain.Room, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
