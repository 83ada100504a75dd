package handlers

import (
	"net/http"

	"github.com/mithuan2002/testisimple/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// recentActivityLimit is how many feed entries the dashboard shows.
const recentActivityLimit = 5

// DashboardHandler serves the dashboard's stats and activity feed
type DashboardHandler struct {
	statsService    StatsServiceInterface
	activityService ActivityServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(statsService StatsServiceInterface, activityService ActivityServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		statsService:    statsService,
		activityService: activityService,
	}
}

// Stats handles GET /api/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Compute()
	if err != nil {
		logger.Error("Failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecentActivities handles GET /api/activities/recent
func (h *DashboardHandler) RecentActivities(c *gin.Context) {
	activities, err := h.activityService.Recent(recentActivityLimit)
	if err != nil {
		logger.Error("Failed to list activities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}
