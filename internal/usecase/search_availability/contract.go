package search_availability

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/availability"
)

// AvailabilityClient интерфейс клиента внешнего сервиса доступности и цен
type AvailabilityClient interface {
	Quote(ctx context.Context, req availability.QuoteRequest) (*availability.QuoteResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
