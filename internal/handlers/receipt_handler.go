package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfarias/recibos-api/internal/models"
	"github.com/mfarias/recibos-api/internal/services"
	"github.com/mfarias/recibos-api/pkg/logger"
)

type ReceiptHandler struct {
	receiptService *services.ReceiptService
	renderService  *services.RenderService
	exportService  *services.ExportService
	storage        artifactStore
}

// artifactStore is the slice of storage the handler needs to keep a copy
// of rendered artifacts.
type artifactStore interface {
	SaveArtifact(name string, data []byte, subDir string) (string, error)
}

func NewReceiptHandler(receiptService *services.ReceiptService, renderService *services.RenderService, exportService *services.ExportService, storage artifactStore) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		renderService:  renderService,
		exportService:  exportService,
		storage:        storage,
	}
}

// @Summary Generate Receipt
// @Description Assemble the legal receipt paragraph for a set of payment items
// @Tags Receipts
// @Accept json
// @Produce json
// @Param receipt body models.ReceiptRequest true "Receipt request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	doc, err := h.receiptService.AssembleReceipt(req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipt": doc.ToResponse()})
}

// @Summary Generate Receipt PDF
// @Description Assemble the receipt and stream the rendered PDF artifact
// @Tags Receipts
// @Accept json
// @Produce application/pdf
// @Param receipt body models.ReceiptRequest true "Receipt request"
// @Param store query bool false "Persist a copy of the artifact"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /receipts/pdf [post]
func (h *ReceiptHandler) PDF(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	doc, err := h.receiptService.AssembleReceipt(req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	data, filename, err := h.renderService.RenderPDF(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.Query("store") == "true" {
		relPath, err := h.storage.SaveArtifact(filename, data, "receipts")
		if err != nil {
			logger.Error("Failed to store receipt artifact", "filename", filename, "error", err)
		} else {
			logger.Info("Stored receipt artifact", "path", relPath)
			c.Header("X-Artifact-Path", relPath)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Export Receipt Breakdown
// @Description Assemble the receipt and stream the item breakdown as XLSX
// @Tags Receipts
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param receipt body models.ReceiptRequest true "Receipt request"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /receipts/xlsx [post]
func (h *ReceiptHandler) XLSX(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	doc, err := h.receiptService.AssembleReceipt(req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	data, filename, err := h.exportService.ExportXLSX(req, doc)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *ReceiptHandler) bindRequest(c *gin.Context) (models.ReceiptRequest, bool) {
	var req models.ReceiptRequest
	if err := BindNestedOrFlat(c, "receipt", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido: " + err.Error()})
		return models.ReceiptRequest{}, false
	}
	return req, true
}

// statusForError maps engine failures to 422 and anything unexpected to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyItems),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrUnsupportedMagnitude),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidPeriod):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
