package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/application/service"
	"github.com/sangkips/blisspos/internal/domain/enum"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/request"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// CartHandler handles the in-progress sale: cart lines, discount, payment
// method and checkout.
type CartHandler struct {
	cartService    *service.CartService
	receiptService *service.ReceiptService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService *service.CartService, receiptService *service.ReceiptService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		receiptService: receiptService,
	}
}

// View handles returning the current cart with computed amounts.
func (h *CartHandler) View(c *gin.Context) {
	response.OK(c, "Cart retrieved successfully", h.cartService.View())
}

// AddItem handles adding one unit of a catalog item to the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.BadRequest(c, "Invalid item_id")
		return
	}

	cart, err := h.cartService.AddToCart(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added to cart", cart)
}

// UpdateItem handles setting the absolute quantity of a cart line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateQuantity(id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated", cart)
}

// RemoveItem handles removing a cart line.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	response.OK(c, "Item removed from cart", h.cartService.RemoveFromCart(id))
}

// Clear handles emptying the cart.
func (h *CartHandler) Clear(c *gin.Context) {
	response.OK(c, "Cart cleared", h.cartService.Clear())
}

// SetDiscount handles setting the discount percent.
func (h *CartHandler) SetDiscount(c *gin.Context) {
	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	cart := h.cartService.SetDiscountPercent(decimal.NewFromFloat(req.Percent))
	response.OK(c, "Discount updated", cart)
}

// SetPaymentMethod handles selecting cash or card.
func (h *CartHandler) SetPaymentMethod(c *gin.Context) {
	var req request.SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, ok := enum.ParsePaymentMethod(req.Method)
	if !ok {
		response.BadRequest(c, "Invalid payment method")
		return
	}
	response.OK(c, "Payment method updated", h.cartService.SetPaymentMethod(method))
}

// Checkout handles completing the sale. The response carries the recorded
// sale together with its printable receipt.
func (h *CartHandler) Checkout(c *gin.Context) {
	sale, err := h.cartService.Checkout(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.receiptService.BuildReceipt(c.Request.Context(), sale)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", gin.H{
		"sale":    sale,
		"receipt": receipt,
	})
}
