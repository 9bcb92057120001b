package v1

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type uploadDocumentResponse struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Status     string `json:"status"`
	JobID      string `json:"job_id"`
}

// UploadDocument godoc
// @Summary Upload a policy document for ingestion
// @Tags documents
// @Accept multipart/form-data
// @Param file formData file true "PDF or DOCX document"
// @Produce json
// @Success 202 {object} uploadDocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /documents [post]
func (h *Handler) UploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, fmt.Errorf("file upload required: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		sendError(c, http.StatusInternalServerError, fmt.Errorf("failed to read file: %w", err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	record, jobID, err := h.documentService.Upload(c.Request.Context(), header.Filename, contentType, data)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusAccepted, uploadDocumentResponse{
		DocumentID: record.DocumentID,
		Filename:   record.Filename,
		Status:     record.Status,
		JobID:      jobID,
	})
}

// ListDocuments godoc
// @Summary List uploaded policy documents
// @Tags documents
// @Param limit query int false "Maximum entries to return"
// @Param offset query int false "Entries to skip"
// @Produce json
// @Success 200 {array} documentctrl.PolicyDocument
// @Failure 500 {object} ErrorResponse
// @Router /documents [get]
func (h *Handler) ListDocuments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	documents, err := h.documentService.List(c.Request.Context(), limit, offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, documents)
}

// GetDocument godoc
// @Summary Get one policy document with its ingestion status
// @Tags documents
// @Param id path string true "Document ID"
// @Produce json
// @Success 200 {object} documentctrl.PolicyDocument
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /documents/{id} [get]
func (h *Handler) GetDocument(c *gin.Context) {
	document, err := h.documentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, document)
}

// DeleteDocument godoc
// @Summary Delete a policy document and its indexed clauses
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /documents/{id} [delete]
func (h *Handler) DeleteDocument(c *gin.Context) {
	if err := h.documentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetJob godoc
// @Summary Get the status of a background job
// @Tags jobs
// @Param id path int true "Job ID"
// @Produce json
// @Success 200 {object} job.Job
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs/{id} [get]
func (h *Handler) GetJob(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, fmt.Errorf("invalid job id: %w", err))
		return
	}

	found, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}
	if found == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "NOT_FOUND",
			Message: fmt.Sprintf("job %d not found", id),
		})
		return
	}

	sendJSON(c, http.StatusOK, found)
}
