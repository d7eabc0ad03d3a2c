package careers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"brightway/internal/pkg/response"
	"brightway/internal/pkg/validator"
)

const maxResumeSize = 5 * 1024 * 1024 // 5 MB

var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/careers", h.Submit)
}

// Submit handles POST /api/v1/careers.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitCareersRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	// Optional resume part, multipart only. Absence is fine.
	if fh, err := c.FormFile("resume"); err == nil && fh != nil {
		meta, msg := resumeMeta(fh)
		if msg != "" {
			response.BadRequest(c, msg)
			return
		}
		req.Resume = meta
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

// resumeMeta extracts name/size/type from the uploaded file and enforces the
// size cap and extension allowlist. The bytes themselves are never read.
func resumeMeta(fh *multipart.FileHeader) (*ResumeMeta, string) {
	if fh.Size > maxResumeSize {
		return nil, "Resume file must be 5MB or smaller."
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedResumeExts[ext] {
		return nil, "Resume must be a .pdf, .doc, .docx or .txt file."
	}

	return &ResumeMeta{
		Name: fh.Filename,
		Size: fh.Size,
		Type: fh.Header.Get("Content-Type"),
	}, ""
}
