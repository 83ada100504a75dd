package handlers

import (
	"errors"
	"net/http"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"
	"github.com/mithuan2002/testisimple/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler handles contact list management requests
type ContactHandler struct {
	contactService ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ListContacts handles GET /api/contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.List()
	if err != nil {
		logger.Error("Failed to list contacts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// CreateContact handles POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	logger.Info("Create contact endpoint called")

	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	contact, err := h.contactService.Create(req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicatePhone) {
			c.JSON(http.StatusConflict, gin.H{"error": "Phone number already exists"})
			return
		}
		logger.Error("Failed to create contact", zap.String("phone", req.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// UpdateContact handles PATCH /api/contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	contact, err := h.contactService.Update(id, req)
	if err != nil {
		h.writeContactError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateContactStatus handles PATCH /api/contacts/:id/status
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isActive is required"})
		return
	}

	contact, err := h.contactService.SetActive(id, *req.IsActive)
	if err != nil {
		h.writeContactError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /api/contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(id); err != nil {
		h.writeContactError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}

// SendTestSMS handles POST /api/contacts/:id/test-sms
func (h *ContactHandler) SendTestSMS(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contactService.SendTest(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		logger.Error("Failed to send test SMS", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send test SMS"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test SMS sent"})
}

func (h *ContactHandler) writeContactError(c *gin.Context, id int, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
	case errors.Is(err, storage.ErrDuplicatePhone):
		c.JSON(http.StatusConflict, gin.H{"error": "Phone number already exists"})
	default:
		logger.Error("Contact operation failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
