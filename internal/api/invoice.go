package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-ai/internal/service"
	"github.com/pageza/recipe-ai/internal/types"
)

type InvoiceHandler struct {
	invoices service.IInvoiceService
}

func NewInvoiceHandler(invoices service.IInvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload-invoice", h.UploadInvoice)
}

func (h *InvoiceHandler) UploadInvoice(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		// a part sent without a filename is parsed as a plain form value
		if form := c.Request.MultipartForm; form != nil {
			if _, ok := form.Value["file"]; ok {
				respondError(c, http.StatusBadRequest, MsgNoSelectedFile)
				return
			}
		}
		respondError(c, http.StatusBadRequest, MsgNoFilePart)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondServiceError(c, "Error processing PDF", err)
		return
	}
	defer file.Close()

	items, err := h.invoices.Extract(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondServiceError(c, "Error processing PDF", err)
		return
	}
	c.JSON(http.StatusOK, types.UploadInvoiceResponse{
		Success:        true,
		ItemsProcessed: len(items),
		Items:          items,
	})
}
