package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"marrakech-tours/internal/dto/request"
	"marrakech-tours/internal/usecase"
	"marrakech-tours/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log,
	}
}

// ListActive handles GET /api/activities
func (h *ActivityHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListActive(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list activities")
		return
	}

	utils.ResponseSuccess(w, "Activities retrieved", response)
}

// GetActivity handles GET /api/activities/{id}
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")

	response, err := h.service.GetActivity(r.Context(), activityID)
	if err != nil {
		h.handleServiceError(w, err, "get activity")
		return
	}

	utils.ResponseSuccess(w, "Activity retrieved", response)
}

// GetRating handles GET /api/activities/{id}/rating
func (h *ActivityHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")

	response, err := h.service.GetRating(r.Context(), activityID)
	if err != nil {
		h.handleServiceError(w, err, "get rating")
		return
	}

	utils.ResponseSuccess(w, "Rating retrieved", response)
}

// ListAll handles GET /api/admin/activities
func (h *ActivityHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list activities")
		return
	}

	utils.ResponseSuccess(w, "Activities retrieved", response)
}

// CreateActivity handles POST /api/admin/activities
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	var req request.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateActivity(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create activity")
		return
	}

	utils.ResponseCreated(w, "Activity created", response)
}

// UpdateActivity handles PUT /api/admin/activities/{id}
func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	activityID := chi.URLParam(r, "id")

	var req request.UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateActivity(r.Context(), userID, activityID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update activity")
		return
	}

	utils.ResponseSuccess(w, "Activity updated", response)
}

// DeleteActivity handles DELETE /api/admin/activities/{id}
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	activityID := chi.URLParam(r, "id")

	if err := h.service.DeleteActivity(r.Context(), userID, activityID); err != nil {
		h.handleServiceError(w, err, "delete activity")
		return
	}

	utils.ResponseSuccess(w, "Activity deleted", nil)
}

// UpdateGetYourGuidePrice handles PATCH /api/admin/activities/{id}/getyourguide-price
func (h *ActivityHandler) UpdateGetYourGuidePrice(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	activityID := chi.URLParam(r, "id")

	var req request.UpdateGetYourGuidePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.UpdateGetYourGuidePrice(r.Context(), userID, activityID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update competitor price")
		return
	}

	utils.ResponseSuccess(w, "Competitor price updated", response)
}

func (h *ActivityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid activity ID"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
