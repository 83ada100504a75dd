package handlers

import (
	"net/http"

	"github.com/mithuan2002/testisimple/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeaderboardHandler serves the aggregated promoter rankings
type LeaderboardHandler struct {
	leaderboardService LeaderboardServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService LeaderboardServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Full handles GET /api/leaderboard
func (h *LeaderboardHandler) Full(c *gin.Context) {
	entries, err := h.leaderboardService.Full()
	if err != nil {
		logger.Error("Failed to build leaderboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Top handles GET /api/leaderboard/top
func (h *LeaderboardHandler) Top(c *gin.Context) {
	promoters, err := h.leaderboardService.Top()
	if err != nil {
		logger.Error("Failed to build top promoters", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top promoters"})
		return
	}
	c.JSON(http.StatusOK, promoters)
}
