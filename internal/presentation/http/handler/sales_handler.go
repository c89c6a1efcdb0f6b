package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/blisspos/internal/application/service"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/request"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/response"
	"github.com/sangkips/blisspos/pkg/pagination"
)

// SalesHandler handles sales history HTTP requests.
type SalesHandler struct {
	ledgerService  *service.LedgerService
	receiptService *service.ReceiptService
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(ledgerService *service.LedgerService, receiptService *service.ReceiptService) *SalesHandler {
	return &SalesHandler{
		ledgerService:  ledgerService,
		receiptService: receiptService,
	}
}

// List handles listing the sales history with optional date filter and
// sort key.
func (h *SalesHandler) List(c *gin.Context) {
	var req request.SalesHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	date, ok := parseDateFilter(c, req.Date)
	if !ok {
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	result, err := h.ledgerService.ListSales(c.Request.Context(), date, service.SortKey(req.SortBy), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Stats handles aggregate statistics over the (optionally date-filtered)
// history.
func (h *SalesHandler) Stats(c *gin.Context) {
	date, ok := parseDateFilter(c, c.Query("date"))
	if !ok {
		return
	}

	stats, err := h.ledgerService.Stats(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales statistics retrieved successfully", stats)
}

// Get handles retrieving a single sale.
func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	sale, err := h.ledgerService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

// Receipt handles re-viewing the receipt of a historical sale.
func (h *SalesHandler) Receipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.ReceiptForSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Print handles printing the receipt of a historical sale. The receipt is
// returned even when the printer fails so it can still be shown on screen.
func (h *SalesHandler) Print(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.PrintSale(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			response.Success(c, 200, "Printer unavailable, receipt returned for display", receipt)
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed successfully", receipt)
}

// parseDateFilter parses an optional "2006-01-02" date in local time,
// replying 400 on malformed input.
func parseDateFilter(c *gin.Context, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return nil, false
	}
	return &date, true
}
