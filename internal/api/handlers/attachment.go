package handlers

import (
	"errors"
	"net/http"

	"workspace-backend/internal/api/response"
	apperrors "workspace-backend/internal/errors"
	"workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for boundaries and part headers around the file
const multipartOverhead = 64 << 10

// AttachmentHandler handles document attachment uploads
type AttachmentHandler struct {
	attachmentService service.AttachmentServiceInterface
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(attachmentService service.AttachmentServiceInterface) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
	}
}

// Extract handles POST /api/attachments/extract
// @Summary Extract text from a document attachment
// @Description Validate an uploaded text document and return its normalized, length-limited text
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to extract"
// @Success 200 {object} response.Envelope{data=service.ExtractedDocument} "Extracted text"
// @Failure 400 {object} response.Envelope "Missing, empty, binary or non UTF-8 file"
// @Failure 413 {object} response.Envelope "File too large"
// @Security BearerAuth
// @Router /api/attachments/extract [post]
func (h *AttachmentHandler) Extract(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	maxBytes := h.attachmentService.MaxBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondServiceError(c, apperrors.ErrFileTooLarge)
			return
		}
		response.Error(c, http.StatusBadRequest, "file is required")
		return
	}
	if fileHeader.Size > maxBytes {
		respondServiceError(c, apperrors.ErrFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer file.Close()

	doc, err := h.attachmentService.Extract(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}
