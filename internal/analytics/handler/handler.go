package handler

import (
	"errors"
	"net/http"
	"strconv"

	"insights-server/internal/analytics/processor"
	"insights-server/internal/apierrors"
	"insights-server/internal/observability"
	"insights-server/internal/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// scopeFromRequest builds the query scope from the authenticated
// caller's tenant and role plus the optional days query parameter.
// Every analytics endpoint goes through this, so no endpoint can skip
// tenant filtering.
func (h *Handler) scopeFromRequest(c *gin.Context) (scope.Scope, bool) {
	ctx := c.Request.Context()

	role, exists := c.Get("Role")
	if !exists {
		h.logger.Error(ctx, "role not found in context", nil)
		apierrors.Unauthorized(c, "unauthorized")
		return scope.Scope{}, false
	}

	tenantID := uuid.Nil
	if tenantIDStr, exists := c.Get("Tenant-ID"); exists && tenantIDStr.(string) != "" {
		parsed, err := uuid.Parse(tenantIDStr.(string))
		if err != nil {
			h.logger.Error(ctx, "failed to parse tenant ID", err)
			apierrors.BadRequest(c, "INVALID_TENANT_ID", "invalid tenant id")
			return scope.Scope{}, false
		}
		tenantID = parsed
	}

	days := scope.DefaultLookbackDays
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_DAYS", "invalid days parameter")
			return scope.Scope{}, false
		}
		days = parsed
	}

	sc, err := scope.New(role.(string), tenantID, days)
	if err != nil {
		if errors.Is(err, scope.ErrTenantRequired) {
			apierrors.Forbidden(c, "TENANT_REQUIRED", "tenant id is required")
			return scope.Scope{}, false
		}
		h.logger.Error(ctx, "failed to build query scope", err)
		apierrors.BadRequest(c, "INVALID_SCOPE", err.Error())
		return scope.Scope{}, false
	}
	return sc, true
}

// HandleGetOverview returns the tenant-level funnel counts
func (h *Handler) HandleGetOverview(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scopeFromRequest(c)
	if !ok {
		return
	}

	overview, err := h.processor.GetFunnelOverview(ctx, sc)
	if err != nil {
		h.logger.Error(ctx, "failed to get funnel overview", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// HandleGetCampaignPerformance returns the per-campaign funnel table
func (h *Handler) HandleGetCampaignPerformance(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scopeFromRequest(c)
	if !ok {
		return
	}

	rows, err := h.processor.GetCampaignPerformance(ctx, sc)
	if err != nil {
		h.logger.Error(ctx, "failed to get campaign performance", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// HandleGetResponseTimes returns response time summaries for the
// 7/30/90 day windows
func (h *Handler) HandleGetResponseTimes(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scopeFromRequest(c)
	if !ok {
		return
	}

	report, err := h.processor.GetResponseTimes(ctx, sc)
	if err != nil {
		h.logger.Error(ctx, "failed to get response times", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// HandleGetFollowUpTiming returns follow-up cadence effectiveness
func (h *Handler) HandleGetFollowUpTiming(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scopeFromRequest(c)
	if !ok {
		return
	}

	buckets, err := h.processor.GetFollowUpTiming(ctx, sc)
	if err != nil {
		h.logger.Error(ctx, "failed to get follow-up timing", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// HandleGetConfidenceCalibration returns scoring calibration bins
func (h *Handler) HandleGetConfidenceCalibration(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scopeFromRequest(c)
	if !ok {
		return
	}

	bins, err := h.processor.GetConfidenceCalibration(ctx, sc)
	if err != nil {
		h.logger.Error(ctx, "failed to get confidence calibration", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, bins)
}

// HandleGetCampaignROI returns the per-campaign ROI table
func (h *Handler) HandleGetCampaignROI(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scopeFromRequest(c)
	if !ok {
		return
	}

	rows, err := h.processor.GetCampaignROI(ctx, sc)
	if err != nil {
		h.logger.Error(ctx, "failed to get campaign ROI", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// HandleGetCostPerHotLead returns the trailing six month cost trend
func (h *Handler) HandleGetCostPerHotLead(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scopeFromRequest(c)
	if !ok {
		return
	}

	rows, err := h.processor.GetCostPerHotLead(ctx, sc)
	if err != nil {
		h.logger.Error(ctx, "failed to get cost per hot lead", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// HandleGetDashboard returns every analytics section in one response.
// Failed sections come back in the errors map instead of failing the
// whole request.
func (h *Handler) HandleGetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := h.scopeFromRequest(c)
	if !ok {
		return
	}

	dashboard := h.processor.GetDashboard(ctx, sc)
	c.JSON(http.StatusOK, dashboard)
}
