package booking_window_options

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/window/models"
)

// WindowService интерфейс сервиса разрешения окна бронирования
type WindowService interface {
	Options(ctx context.Context) *models.OptionsResponse
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
