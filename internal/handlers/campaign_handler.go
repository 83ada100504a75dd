package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"
	"github.com/mithuan2002/testisimple/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CampaignHandler handles campaign CRUD and SMS fan-out requests
type CampaignHandler struct {
	campaignService   CampaignServiceInterface
	submissionService SubmissionServiceInterface
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService CampaignServiceInterface, submissionService SubmissionServiceInterface) *CampaignHandler {
	return &CampaignHandler{
		campaignService:   campaignService,
		submissionService: submissionService,
	}
}

// ListCampaigns handles GET /api/campaigns
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.List()
	if err != nil {
		logger.Error("Failed to list campaigns", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaigns"})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// GetCampaign handles GET /api/campaigns/:id. Public: the submission form
// loads the campaign by ID without a session.
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	campaign, err := h.campaignService.Get(id)
	if err != nil {
		logger.Error("Failed to get campaign", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign"})
		return
	}
	if campaign == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// CreateCampaign handles POST /api/campaigns. The response carries the
// created campaign together with the SMS fan-out summary.
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	logger.Info("Create campaign endpoint called")

	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create campaign request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	campaign, result, err := h.campaignService.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create campaign", zap.String("title", req.Title), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
		return
	}

	logger.Info("Campaign created",
		zap.Int("campaign_id", campaign.ID),
		zap.Int("sms_sent", result.Sent),
		zap.Int("sms_failed", result.Failed),
	)
	c.JSON(http.StatusCreated, gin.H{
		"campaign":     campaign,
		"notification": result,
	})
}

// DeleteCampaign handles DELETE /api/campaigns/:id. Submissions tied to the
// campaign are removed with it.
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.campaignService.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		logger.Error("Failed to delete campaign", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete campaign"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
}

// ResendSMS handles POST /api/campaigns/:id/resend-sms
func (h *CampaignHandler) ResendSMS(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.campaignService.Resend(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		logger.Error("Failed to resend campaign SMS", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend notifications"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CampaignSubmissions handles GET /api/campaigns/:id/submissions. Public: the
// form page shows existing entries for its campaign.
func (h *CampaignHandler) CampaignSubmissions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	submissions, err := h.submissionService.ByCampaign(id)
	if err != nil {
		logger.Error("Failed to list campaign submissions", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// pathID parses the :id path parameter, answering 400 on garbage.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}
