package search_availability

import (
	"context"

	searchAvailability "github.com/m04kA/SMC-HotelBookingService/internal/usecase/search_availability"
)

// SearchAvailabilityUseCase интерфейс use case поиска доступности
type SearchAvailabilityUseCase interface {
	Execute(ctx context.Context, req *searchAvailability.Request) (*searchAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
