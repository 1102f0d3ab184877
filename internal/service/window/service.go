package window

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/window/models"
)

// Service сервис разрешения окна бронирования.
// Используется формой поиска и экраном оформления: оба строят payload
// из одного и того же каноничного окна.
type Service struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса окна бронирования
func NewService(logger Logger) *Service {
	return &Service{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Resolve переводит сырые поля формы в каноничное окно заезда/выезда
func (s *Service) Resolve(ctx context.Context, req *models.ResolveRequest) (*models.WindowResponse, error) {
	modality, input, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Resolve: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Сбрасываем поля, оставшиеся от другого тарифа
	input = domain.NormalizeInput(modality, input)

	window, ok := domain.ResolveWindow(modality, input)
	if !ok {
		s.logger.Info("Resolve: incomplete input for modality=%s", modality)
		return nil, ErrIncompleteInput
	}

	s.logger.Info("Resolve: modality=%s, checkIn=%s, checkOut=%s",
		modality, window.CheckIn.Format(domain.DateFormat+" "+domain.TimeFormat),
		window.EffectiveCheckOut().Format(domain.DateFormat+" "+domain.TimeFormat))

	return models.FromDomainWindow(modality, window), nil
}

// Options возвращает наборы-кандидаты почасового тарифа и предзаполнение
// формы на основе текущего времени
func (s *Service) Options(ctx context.Context) *models.OptionsResponse {
	return models.BuildOptions(s.timeProvider.Now())
}
