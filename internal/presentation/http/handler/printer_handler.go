package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/blisspos/internal/application/service"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer status and test print requests.
type PrinterHandler struct {
	receiptService *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(receiptService *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receiptService: receiptService}
}

// Status handles reporting printer configuration and reachability.
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.Status())
}

// TestPrint handles sending a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.receiptService.TestPrint(); err != nil {
		response.ErrorWithCode(c, 502, "Test print failed: "+err.Error())
		return
	}
	response.OK(c, "Test page sent to printer", nil)
}
