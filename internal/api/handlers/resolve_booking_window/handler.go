package resolve_booking_window

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/window"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/window/models"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidInput    = "некорректные параметры бронирования"
	msgIncompleteInput = "параметры бронирования заполнены не полностью"
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

// Handle POST /api/v1/booking-window/resolve
// Body: modality (required), date (required, YYYY-MM-DD),
// endDate (daily), checkInTime + durationHours (hourly)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /booking-window/resolve - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Resolve(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, window.ErrInvalidInput):
			h.logger.Warn("POST /booking-window/resolve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, window.ErrIncompleteInput):
			// Неполный ввод — ожидаемое состояние формы, не сбой
			h.logger.Info("POST /booking-window/resolve - Incomplete input: modality=%s", req.Modality)
			handlers.RespondUnprocessableEntity(w, msgIncompleteInput)

		default:
			h.logger.Error("POST /booking-window/resolve - Failed to resolve window: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-window/resolve - Window resolved: modality=%s, checkIn=%s",
		result.Modality, result.CheckIn)
	handlers.RespondJSON(w, http.StatusOK, result)
}
