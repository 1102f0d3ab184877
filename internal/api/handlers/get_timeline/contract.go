package get_timeline

import (
	"context"

	getTimeline "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_timeline"
)

// GetTimelineUseCase интерфейс use case штабного таймлайна
type GetTimelineUseCase interface {
	Execute(ctx context.Context, req *getTimeline.Request) (*getTimeline.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
