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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review submitted for moderation", response)
}

// ListApproved handles GET /api/reviews?activityId=
func (h *ReviewHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	activityID := r.URL.Query().Get("activityId")

	response, err := h.service.ListApproved(r.Context(), activityID)
	if err != nil {
		h.handleServiceError(w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", response)
}

// ListAll handles GET /api/admin/reviews
func (h *ReviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", response)
}

// UpdateApproval handles PATCH /api/admin/reviews/{id}/approval
func (h *ReviewHandler) UpdateApproval(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	reviewID := chi.URLParam(r, "id")

	var req request.UpdateReviewApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.UpdateApproval(r.Context(), userID, reviewID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update review approval")
		return
	}

	utils.ResponseSuccess(w, "Review approval updated", response)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid activity ID"),
		strings.Contains(errMsg, "invalid review ID"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
