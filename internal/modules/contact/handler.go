package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviweb/internal/domain"
	"moviweb/internal/pkg/response"
	"moviweb/internal/repository"
)

// Handler persists contact form submissions. There is no service layer
// here; the form maps straight onto the contact row.
type Handler struct {
	contacts *repository.ContactRepository
}

func NewHandler(contacts *repository.ContactRepository) *Handler {
	return &Handler{contacts: contacts}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	entry := &domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.contacts.Create(c.Request.Context(), entry); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to save message")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Thank you for reaching out"})
}
