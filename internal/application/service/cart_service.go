package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
	"github.com/sangkips/blisspos/internal/domain/enum"
	"github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/pkg/apperror"
	"github.com/sangkips/blisspos/pkg/utils"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CartService owns the single in-progress transaction: an ordered list of
// cart lines, the selected payment method, and the discount percent. The
// cart is transient state, never persisted; only the sale produced at
// checkout reaches the ledger.
//
// Cart lines hold item snapshots, so deleting or changing a catalog item
// does not affect an open cart.
type CartService struct {
	itemRepo repository.ItemRepository
	saleRepo repository.SaleRepository
	taxRate  decimal.Decimal
	now      func() time.Time

	mu              sync.Mutex
	entries         []entity.CartItem
	discountPercent decimal.Decimal
	paymentMethod   enum.PaymentMethod
}

// NewCartService creates a cart service applying the given flat tax rate
// (e.g. 0.05) at checkout.
func NewCartService(itemRepo repository.ItemRepository, saleRepo repository.SaleRepository, taxRate float64) *CartService {
	return &CartService{
		itemRepo: itemRepo,
		saleRepo: saleRepo,
		taxRate:  decimal.NewFromFloat(taxRate),
		now:      time.Now,
	}
}

// CartView is a snapshot of the cart plus its computed amounts.
type CartView struct {
	Items           []entity.CartItem  `json:"items"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	Discount        decimal.Decimal    `json:"discount"`
	Tax             decimal.Decimal    `json:"tax"`
	Total           decimal.Decimal    `json:"total"`
}

// AddToCart snapshots the catalog item and merges it into the cart: if a
// line for this item already exists its quantity is incremented by one and
// its position is unchanged; otherwise a new line with quantity 1 is
// appended.
func (s *CartService) AddToCart(ctx context.Context, itemID uuid.UUID) (*CartView, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Item.ID == itemID {
			s.entries[i].Quantity++
			return s.viewLocked(), nil
		}
	}
	s.entries = append(s.entries, entity.CartItem{Item: *item, Quantity: 1})
	return s.viewLocked(), nil
}

// UpdateQuantity sets the quantity of a cart line to exactly quantity; a
// value of zero or less removes the line.
func (s *CartService) UpdateQuantity(itemID uuid.UUID, quantity int) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(itemID)
		return s.viewLocked(), nil
	}
	for i := range s.entries {
		if s.entries[i].Item.ID == itemID {
			s.entries[i].Quantity = quantity
			return s.viewLocked(), nil
		}
	}
	return nil, apperror.NewNotFoundError("Cart item")
}

// RemoveFromCart removes a cart line unconditionally.
func (s *CartService) RemoveFromCart(itemID uuid.UUID) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(itemID)
	return s.viewLocked()
}

// Clear empties the cart and resets discount and payment method.
func (s *CartService) Clear() *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	return s.viewLocked()
}

// SetDiscountPercent sets the discount percent, clamped to [0, 100].
func (s *CartService) SetDiscountPercent(percent decimal.Decimal) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if percent.IsNegative() {
		percent = decimal.Zero
	}
	if percent.GreaterThan(hundred) {
		percent = hundred
	}
	s.discountPercent = percent
	return s.viewLocked()
}

// SetPaymentMethod selects cash or card for the in-progress sale.
func (s *CartService) SetPaymentMethod(method enum.PaymentMethod) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paymentMethod = method
	return s.viewLocked()
}

// View returns the current cart with all computed amounts.
func (s *CartService) View() *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewLocked()
}

// Checkout finalizes the in-progress transaction. An empty cart is refused
// and nothing changes. Otherwise the cart is snapshotted into an immutable
// sale with a fresh ID, timestamp and receipt number, the sale is appended
// to the ledger, and the cart is reset for the next transaction.
func (s *CartService) Checkout(ctx context.Context) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	items := make([]entity.CartItem, len(s.entries))
	copy(items, s.entries)

	subtotal := s.subtotalLocked()
	discount := s.discountLocked(subtotal)
	tax := s.taxLocked(subtotal, discount)
	createdAt := s.now()

	sale := &entity.Sale{
		ID:            utils.NewID(),
		Items:         items,
		Subtotal:      subtotal,
		Discount:      discount,
		Tax:           tax,
		Total:         subtotal.Sub(discount).Add(tax),
		PaymentMethod: s.paymentMethod,
		CreatedAt:     createdAt,
		ReceiptNumber: utils.GenerateReceiptNumber(createdAt),
	}

	if err := s.saleRepo.Append(ctx, sale); err != nil {
		return nil, err
	}

	s.resetLocked()
	return sale, nil
}

func (s *CartService) removeLocked(itemID uuid.UUID) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Item.ID != itemID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

func (s *CartService) resetLocked() {
	s.entries = nil
	s.discountPercent = decimal.Zero
	s.paymentMethod = enum.PaymentMethodCash
}

func (s *CartService) subtotalLocked() decimal.Decimal {
	subtotal := decimal.Zero
	for _, e := range s.entries {
		subtotal = subtotal.Add(e.LineTotal())
	}
	return subtotal
}

func (s *CartService) discountLocked(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(s.discountPercent).Div(hundred)
}

func (s *CartService) taxLocked(subtotal, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Mul(s.taxRate)
}

func (s *CartService) viewLocked() *CartView {
	items := make([]entity.CartItem, len(s.entries))
	copy(items, s.entries)

	subtotal := s.subtotalLocked()
	discount := s.discountLocked(subtotal)
	tax := s.taxLocked(subtotal, discount)

	return &CartView{
		Items:           items,
		DiscountPercent: s.discountPercent,
		PaymentMethod:   s.paymentMethod,
		Subtotal:        subtotal,
		Discount:        discount,
		Tax:             tax,
		Total:           subtotal.Sub(discount).Add(tax),
	}
}
