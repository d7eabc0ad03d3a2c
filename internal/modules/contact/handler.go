package contact

import (
	"github.com/gin-gonic/gin"

	"brightway/internal/pkg/response"
	"brightway/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

// Submit handles POST /api/v1/contact.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	if missing := validator.Missing(&req); missing != nil {
		response.ValidationError(c, missing)
		return
	}

	recordID, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.Success(c, SuccessMessage, req, recordID)
}
