package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-gateway/pkg/middleware"
	"content-gateway/pkg/models"
	"content-gateway/pkg/services"
)

// maxBodyBytes caps request bodies; the content document is a few KB
const maxBodyBytes = 1 << 20

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	contentService services.ContentService
	leadService    services.LeadService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(contentService services.ContentService, leadService services.LeadService) *Handlers {
	return &Handlers{
		contentService: contentService,
		leadService:    leadService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GetContent returns the site content document
func (h *Handlers) GetContent(c *gin.Context) {
	content, err := h.contentService.GetContent(c.Request.Context())
	if err != nil {
		h.respondError(c, "fetching content", err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// UpdateContent replaces the site content document
func (h *Handlers) UpdateContent(c *gin.Context) {
	var content models.Content
	if err := models.Decode(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes), &content); err != nil {
		h.respondError(c, "parsing content", err)
		return
	}

	if err := h.contentService.UpdateContent(c.Request.Context(), content); err != nil {
		h.respondError(c, "updating content", err)
		return
	}

	if sub := middleware.GetAdminSubject(c); sub != "" {
		log.Printf("Content updated by %s", sub)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully"})
}

// SubmitLead saves a contact form submission
func (h *Handlers) SubmitLead(c *gin.Context) {
	var lead models.LeadSubmission
	if err := models.Decode(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes), &lead); err != nil {
		h.respondError(c, "parsing lead", err)
		return
	}

	if err := h.leadService.SubmitLead(c.Request.Context(), lead); err != nil {
		h.respondError(c, "saving lead", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead captured"})
}

// ListLeads returns all leads, newest first
func (h *Handlers) ListLeads(c *gin.Context) {
	leads, err := h.leadService.ListLeads(c.Request.Context())
	if err != nil {
		h.respondError(c, "fetching leads", err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

// respondError maps service errors to a status code. Store failures are
// reported as 500 with the underlying message.
func (h *Handlers) respondError(c *gin.Context, action string, err error) {
	var validationErr *models.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, services.ErrContentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("Error %s (request %s): %v", action, middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
