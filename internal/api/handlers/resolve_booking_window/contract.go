package resolve_booking_window

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/window/models"
)

// WindowService интерфейс сервиса разрешения окна бронирования
type WindowService interface {
	Resolve(ctx context.Context, req *models.ResolveRequest) (*models.WindowResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
