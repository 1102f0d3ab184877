package get_timeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	getTimeline "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_timeline"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams   = "некорректные параметры запроса"
	msgUnauthorized    = "требуется авторизация"
)

type Handler struct {
	useCase GetTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/timeline
// Query params: date (required, YYYY-MM-DD). Требует авторизации сотрудника
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем ID сотрудника из контекста (установлен middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /branches/{id}/timeline - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)

	// Извлекаем branchId из URL
	branchIDStr := vars["branchId"]
	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/timeline - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /branches/{id}/timeline - Missing date: branch_id=%d", branchID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, branchID, dateStr)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/timeline - Invalid date format: branch_id=%d, error=%v", branchID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getTimeline.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id}/timeline - Invalid input: branch_id=%d, error=%v", branchID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /branches/{id}/timeline - Failed to build timeline: user_id=%d, branch_id=%d, error=%v",
				userID, branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /branches/{id}/timeline - Timeline built successfully: user_id=%d, branch_id=%d, date=%s, groups_count=%d",
		userID, branchID, dateStr, len(result.Groups))
	handlers.RespondJSON(w, http.StatusOK, response)
}
