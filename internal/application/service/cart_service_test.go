package service

import (
	"testing"
	"time"

	"github.com/sangkips/blisspos/internal/domain/enum"
	"github.com/sangkips/blisspos/pkg/apperror"
	"github.com/sangkips/blisspos/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesByItem(t *testing.T) {
	f := newFixture(t)
	category := f.addCategory(t, "Drinks")
	coffee := f.addItem(t, "Coffee", "5.00", category)
	cake := f.addItem(t, "Cake", "3.00", category)

	for i := 0; i < 3; i++ {
		_, err := f.cart.AddToCart(f.ctx, coffee.ID)
		require.NoError(t, err)
	}
	cart, err := f.cart.AddToCart(f.ctx, cake.ID)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, coffee.ID, cart.Items[0].Item.ID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, cake.ID, cart.Items[1].Item.ID)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestAddToCartUnknownItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.cart.AddToCart(f.ctx, utils.NewID())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateQuantity(t *testing.T) {
	f := newFixture(t)
	category := f.addCategory(t, "Drinks")
	coffee := f.addItem(t, "Coffee", "5.00", category)

	_, err := f.cart.AddToCart(f.ctx, coffee.ID)
	require.NoError(t, err)

	cart, err := f.cart.UpdateQuantity(coffee.ID, 7)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	// Zero removes the line
	cart, err = f.cart.UpdateQuantity(coffee.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	f := newFixture(t)

	_, err := f.cart.UpdateQuantity(utils.NewID(), 2)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRemoveFromCart(t *testing.T) {
	f := newFixture(t)
	category := f.addCategory(t, "Drinks")
	coffee := f.addItem(t, "Coffee", "5.00", category)
	cake := f.addItem(t, "Cake", "3.00", category)

	_, err := f.cart.AddToCart(f.ctx, coffee.ID)
	require.NoError(t, err)
	_, err = f.cart.AddToCart(f.ctx, cake.ID)
	require.NoError(t, err)

	cart := f.cart.RemoveFromCart(coffee.ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, cake.ID, cart.Items[0].Item.ID)

	// Removing an absent line is a no-op
	cart = f.cart.RemoveFromCart(coffee.ID)
	assert.Len(t, cart.Items, 1)
}

func TestSetDiscountPercentClamps(t *testing.T) {
	f := newFixture(t)

	cart := f.cart.SetDiscountPercent(decimal.NewFromInt(-5))
	requireDecimalEqual(t, "0", cart.DiscountPercent)

	cart = f.cart.SetDiscountPercent(decimal.NewFromInt(150))
	requireDecimalEqual(t, "100", cart.DiscountPercent)

	cart = f.cart.SetDiscountPercent(decimal.RequireFromString("12.5"))
	requireDecimalEqual(t, "12.5", cart.DiscountPercent)
}

// Two coffees at 5.00 and one cake at 3.00 with a 10% discount and 5% tax:
// subtotal 13.00, discount 1.30, tax on 11.70 is 0.585, total 12.285.
func TestCartTotals(t *testing.T) {
	f := newFixture(t)
	category := f.addCategory(t, "Menu")
	coffee := f.addItem(t, "Coffee", "5.00", category)
	cake := f.addItem(t, "Cake", "3.00", category)

	_, err := f.cart.AddToCart(f.ctx, coffee.ID)
	require.NoError(t, err)
	_, err = f.cart.AddToCart(f.ctx, coffee.ID)
	require.NoError(t, err)
	_, err = f.cart.AddToCart(f.ctx, cake.ID)
	require.NoError(t, err)

	cart := f.cart.SetDiscountPercent(decimal.NewFromInt(10))

	requireDecimalEqual(t, "13.00", cart.Subtotal)
	requireDecimalEqual(t, "1.30", cart.Discount)
	requireDecimalEqual(t, "0.585", cart.Tax)
	requireDecimalEqual(t, "12.285", cart.Total)

	// Total always equals subtotal - discount + tax
	identity := cart.Subtotal.Sub(cart.Discount).Add(cart.Tax)
	require.True(t, cart.Total.Equal(identity))
}

func TestTotalDecreasesAsDiscountGrows(t *testing.T) {
	f := newFixture(t)
	category := f.addCategory(t, "Menu")
	coffee := f.addItem(t, "Coffee", "4.75", category)

	_, err := f.cart.AddToCart(f.ctx, coffee.ID)
	require.NoError(t, err)

	previous := f.cart.SetDiscountPercent(decimal.Zero).Total
	for _, percent := range []int64{10, 25, 50, 100} {
		total := f.cart.SetDiscountPercent(decimal.NewFromInt(percent)).Total
		assert.True(t, total.LessThan(previous), "total %s at %d%% not below %s", total, percent, previous)
		previous = total
	}
	requireDecimalEqual(t, "0", previous)
}

func TestCheckoutEmptyCartRefused(t *testing.T) {
	f := newFixture(t)

	_, err := f.cart.Checkout(f.ctx)
	require.ErrorIs(t, err, apperror.ErrEmptyCart)

	sales, err := f.saleRepo.List(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCheckoutRecordsSaleAndResetsCart(t *testing.T) {
	f := newFixture(t)
	category := f.addCategory(t, "Menu")
	coffee := f.addItem(t, "Coffee", "5.00", category)
	cake := f.addItem(t, "Cake", "3.00", category)

	checkoutAt := time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local)
	f.cart.now = func() time.Time { return checkoutAt }

	for i := 0; i < 2; i++ {
		_, err := f.cart.AddToCart(f.ctx, coffee.ID)
		require.NoError(t, err)
	}
	_, err := f.cart.AddToCart(f.ctx, cake.ID)
	require.NoError(t, err)
	f.cart.SetDiscountPercent(decimal.NewFromInt(10))
	f.cart.SetPaymentMethod(enum.PaymentMethodCard)

	sale, err := f.cart.Checkout(f.ctx)
	require.NoError(t, err)

	require.Len(t, sale.Items, 2)
	requireDecimalEqual(t, "13.00", sale.Subtotal)
	requireDecimalEqual(t, "1.30", sale.Discount)
	requireDecimalEqual(t, "0.585", sale.Tax)
	requireDecimalEqual(t, "12.285", sale.Total)
	assert.Equal(t, enum.PaymentMethodCard, sale.PaymentMethod)
	assert.True(t, sale.CreatedAt.Equal(checkoutAt))
	assert.Equal(t, utils.GenerateReceiptNumber(checkoutAt), sale.ReceiptNumber)

	stored, err := f.saleRepo.GetByID(f.ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// The next transaction starts from a clean cart
	cart := f.cart.View()
	assert.Empty(t, cart.Items)
	requireDecimalEqual(t, "0", cart.DiscountPercent)
	assert.Equal(t, enum.PaymentMethodCash, cart.PaymentMethod)
}

func TestCartLinesSnapshotCatalogItems(t *testing.T) {
	f := newFixture(t)
	category := f.addCategory(t, "Menu")
	coffee := f.addItem(t, "Coffee", "5.00", category)

	_, err := f.cart.AddToCart(f.ctx, coffee.ID)
	require.NoError(t, err)

	// Deleting the item from the catalog leaves the open cart untouched
	require.NoError(t, f.catalog.DeleteItem(f.ctx, coffee.ID))

	cart := f.cart.View()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Coffee", cart.Items[0].Item.Name)
	requireDecimalEqual(t, "5.00", cart.Subtotal)

	sale, err := f.cart.Checkout(f.ctx)
	require.NoError(t, err)
	requireDecimalEqual(t, "5.00", sale.Subtotal)
}
