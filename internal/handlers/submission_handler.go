package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"
	"github.com/mithuan2002/testisimple/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionHandler handles proof-of-engagement submission requests
type SubmissionHandler struct {
	submissionService SubmissionServiceInterface
	uploadDir         string
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService SubmissionServiceInterface, uploadDir string) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		uploadDir:         uploadDir,
	}
}

// ListSubmissions handles GET /api/submissions
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.List()
	if err != nil {
		logger.Error("Failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// CreateSubmission handles POST /api/submissions. Public endpoint backing the
// campaign form: accepts either JSON with a screenshotUrl, or multipart form
// data with the image under the "screenshot" field.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	logger.Info("Create submission endpoint called")

	var req models.CreateSubmissionRequest
	screenshotURL := ""

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			logger.Warn("Invalid submission form", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		file, err := c.FormFile("screenshot")
		if err == nil {
			saved, saveErr := h.saveScreenshot(file.Filename, func(dst string) error {
				return c.SaveUploadedFile(file, dst)
			})
			if saveErr != nil {
				logger.Error("Failed to store screenshot", zap.Error(saveErr))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store screenshot"})
				return
			}
			screenshotURL = saved
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Invalid submission request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	if screenshotURL == "" {
		screenshotURL = req.ScreenshotURL
	}

	submission, err := h.submissionService.Create(req, screenshotURL)
	if err != nil {
		logger.Error("Failed to create submission", zap.Int("campaign_id", req.CampaignID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// UpdatePoints handles PATCH /api/submissions/:id/points
func (h *SubmissionHandler) UpdatePoints(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdatePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	points, present := req.Value()
	if !present {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points is required"})
		return
	}
	if points < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points must be non-negative"})
		return
	}

	submission, err := h.submissionService.AwardPoints(id, points)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		logger.Error("Failed to award points", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award points"})
		return
	}
	c.JSON(http.StatusOK, submission)
}

// saveScreenshot writes the uploaded image under the uploads dir with a
// random name, keeping only the original extension. Returns the public URL
// path the stored file is served from.
func (h *SubmissionHandler) saveScreenshot(original string, save func(dst string) error) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		ext = ".png"
	}

	name := uuid.New().String() + ext
	if err := save(filepath.Join(h.uploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
