package api

import (
	"net/http"

	analyticsHandler "insights-server/internal/analytics/handler"
	authHandler "insights-server/internal/auth/handler"
	"insights-server/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	analyticsHandler analyticsHandler.Handler
	rateLimiter      *ratelimit.Service
}

func New(router *gin.RouterGroup, authHandler authHandler.Handler, analyticsHandler analyticsHandler.Handler, rateLimiter *ratelimit.Service) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		analyticsHandler: analyticsHandler,
		rateLimiter:      rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware, a.rateLimiter.Middleware())
	{
		analyticsGroup := protectedGroup.Group("/analytics")
		analyticsGroup.GET("/overview", a.analyticsHandler.HandleGetOverview)
		analyticsGroup.GET("/campaign-performance", a.analyticsHandler.HandleGetCampaignPerformance)
		analyticsGroup.GET("/response-times", a.analyticsHandler.HandleGetResponseTimes)
		analyticsGroup.GET("/follow-up-timing", a.analyticsHandler.HandleGetFollowUpTiming)
		analyticsGroup.GET("/confidence-calibration", a.analyticsHandler.HandleGetConfidenceCalibration)
		analyticsGroup.GET("/roi", a.analyticsHandler.HandleGetCampaignROI)
		analyticsGroup.GET("/cost-per-lead", a.analyticsHandler.HandleGetCostPerHotLead)
		analyticsGroup.GET("/dashboard", a.analyticsHandler.HandleGetDashboard)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
