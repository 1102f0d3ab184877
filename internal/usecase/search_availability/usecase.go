package search_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	availabilityClient "github.com/m04kA/SMC-HotelBookingService/internal/integrations/availability"
)

// UseCase use case поиска доступности: разрешает каноничное окно
// из сырых полей формы и запрашивает внешний сервис доступности и цен
type UseCase struct {
	client AvailabilityClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AvailabilityClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет use case поиска доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchAvailability: branch=%d, modality=%s, date=%s",
		req.BranchID, req.Modality, req.Input.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Сбрасываем поля, оставшиеся от другого тарифа
	input := domain.NormalizeInput(req.Modality, req.Input)

	// 3. Разрешаем каноничное окно; неполный ввод — запрос не отправляем
	window, ok := domain.ResolveWindow(req.Modality, input)
	if !ok {
		uc.logger.Info("SearchAvailability: incomplete input for branch=%d, modality=%s",
			req.BranchID, req.Modality)
		return nil, ErrIncompleteInput
	}

	checkOut := window.EffectiveCheckOut()

	// 4. Сериализуем окно в запрос к сервису доступности
	quoteReq := availabilityClient.QuoteRequest{
		BranchID: req.BranchID,
		Modality: req.Modality.String(),
		CheckIn:  window.CheckIn.Format(time.RFC3339),
		CheckOut: checkOut.Format(time.RFC3339),
		Hours:    window.Hours,
	}

	quote, err := uc.client.Quote(ctx, quoteReq)
	if err != nil {
		if errors.Is(err, availabilityClient.ErrBranchNotFound) {
			uc.logger.Warn("SearchAvailability: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("SearchAvailability: quote failed for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get quote: %v", ErrInternal, err)
	}

	// 5. Формируем ответ
	offers := make([]Offer, len(quote.Offers))
	for i, offer := range quote.Offers {
		offers[i] = Offer{
			RoomTypeID:     offer.RoomTypeID,
			RoomTypeName:   offer.RoomTypeName,
			AvailableRooms: offer.AvailableRooms,
			TotalPrice:     offer.TotalPrice,
			Currency:       offer.Currency,
		}
	}

	uc.logger.Info("SearchAvailability: branch=%d, checkIn=%s, checkOut=%s, offers=%d",
		req.BranchID, quoteReq.CheckIn, quoteReq.CheckOut, len(offers))

	return &Response{
		BranchID: req.BranchID,
		Modality: req.Modality,
		CheckIn:  window.CheckIn,
		CheckOut: checkOut,
		Hours:    window.Hours,
		Offers:   offers,
	}, nil
}
