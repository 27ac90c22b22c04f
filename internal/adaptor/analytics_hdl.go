package adaptor

import (
	"net/http"

	"marrakech-tours/internal/notification"
	"marrakech-tours/internal/usecase"
	"marrakech-tours/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log,
	}
}

// Health handles GET /api/health
func (h *AnalyticsHandler) Health(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Health(r.Context())
	if err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Service healthy", response)
}

// ActivityStats handles GET /api/admin/analytics/activities
func (h *AnalyticsHandler) ActivityStats(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ActivityStats(r.Context())
	if err != nil {
		h.log.Error("Failed to compute activity analytics", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Activity analytics retrieved", response)
}

// BookingStats handles GET /api/admin/analytics/bookings
func (h *AnalyticsHandler) BookingStats(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.BookingStats(r.Context())
	if err != nil {
		h.log.Error("Failed to compute booking analytics", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Booking analytics retrieved", response)
}

// Earnings handles GET /api/admin/analytics/earnings
func (h *AnalyticsHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Earnings(r.Context())
	if err != nil {
		h.log.Error("Failed to compute earnings", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Earnings retrieved", response)
}

// PriceComparison handles GET /api/admin/getyourguide/comparison
func (h *AnalyticsHandler) PriceComparison(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.PriceComparison(r.Context())
	if err != nil {
		h.log.Error("Failed to build price comparison", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Price comparison retrieved", response)
}

// SystemHealth handles GET /api/admin/system-health
func (h *AnalyticsHandler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.SystemHealth(r.Context())
	if err != nil {
		h.log.Error("Failed to read system health", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "System health retrieved", response)
}

// AuditLogs handles GET /api/admin/audit-logs
func (h *AnalyticsHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.RecentAuditLogs(r.Context())
	if err != nil {
		h.log.Error("Failed to list audit logs", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Audit logs retrieved", response)
}

// WhatsAppContacts handles GET /api/admin/whatsapp-contacts
func (h *AnalyticsHandler) WhatsAppContacts(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Contacts retrieved", notification.AdminContacts())
}
