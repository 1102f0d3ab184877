package search_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	searchAvailability "github.com/m04kA/SMC-HotelBookingService/internal/usecase/search_availability"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgMissingModality = "тариф обязателен"
	msgMissingDate     = "дата обязательна"
	msgInvalidParams   = "некорректные параметры запроса"
	msgIncompleteInput = "форма бронирования заполнена не полностью"
	msgBranchNotFound  = "филиал не найден"
)

type Handler struct {
	useCase SearchAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SearchAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/availability
// Query params: modality (required), date (required, YYYY-MM-DD),
// endDate, checkInTime (HH:MM), durationHours — по требованию тарифа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем branchId из URL
	branchIDStr := vars["branchId"]
	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/availability - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	query := r.URL.Query()

	modalityStr := query.Get("modality")
	if modalityStr == "" {
		h.logger.Warn("GET /branches/{id}/availability - Missing modality: branch_id=%d", branchID)
		handlers.RespondBadRequest(w, msgMissingModality)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /branches/{id}/availability - Missing date: branch_id=%d", branchID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом тарифа, дат и времени)
	useCaseReq, err := ToUseCaseRequest(branchID, modalityStr, dateStr,
		query.Get("endDate"), query.Get("checkInTime"), query.Get("durationHours"))
	if err != nil {
		h.logger.Warn("GET /branches/{id}/availability - Invalid query params: branch_id=%d, error=%v", branchID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, searchAvailability.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id}/availability - Invalid input: branch_id=%d, error=%v", branchID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, searchAvailability.ErrIncompleteInput):
			h.logger.Warn("GET /branches/{id}/availability - Incomplete input: branch_id=%d, modality=%s",
				branchID, modalityStr)
			handlers.RespondUnprocessableEntity(w, msgIncompleteInput)

		case errors.Is(err, searchAvailability.ErrBranchNotFound):
			h.logger.Warn("GET /branches/{id}/availability - Branch not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		default:
			h.logger.Error("GET /branches/{id}/availability - Failed to search availability: branch_id=%d, error=%v",
				branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /branches/{id}/availability - Availability retrieved successfully: branch_id=%d, modality=%s, offers_count=%d",
		branchID, modalityStr, len(result.Offers))
	handlers.RespondJSON(w, http.StatusOK, response)
}
