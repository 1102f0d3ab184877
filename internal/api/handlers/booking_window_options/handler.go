package booking_window_options

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

type Handler struct {
	service WindowService
	logger  Logger
}

func NewHandler(service WindowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-window/options
// Возвращает наборы-кандидаты почасового тарифа и предзаполнение формы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Options(r.Context())

	h.logger.Info("GET /booking-window/options - Options served: defaultDate=%s, defaultTime=%s",
		result.DefaultDate, result.DefaultCheckInTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
