package service

import (
	"context"
	"testing"

	"github.com/sangkips/blisspos/internal/domain/entity"
	domainRepo "github.com/sangkips/blisspos/internal/domain/repository"
	infraRepo "github.com/sangkips/blisspos/internal/infrastructure/repository"
	"github.com/sangkips/blisspos/internal/infrastructure/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fixture wires the services over file-backed repositories in a temp
// directory, the same way main does against the real data directory.
type fixture struct {
	ctx          context.Context
	categoryRepo domainRepo.CategoryRepository
	itemRepo     domainRepo.ItemRepository
	saleRepo     domainRepo.SaleRepository
	profileRepo  domainRepo.StoreProfileRepository

	catalog *CatalogService
	cart    *CartService
	ledger  *LedgerService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	categoryRepo, err := infraRepo.NewCategoryRepository(store)
	require.NoError(t, err)
	itemRepo, err := infraRepo.NewItemRepository(store)
	require.NoError(t, err)
	saleRepo, err := infraRepo.NewSaleRepository(store)
	require.NoError(t, err)
	profileRepo, err := infraRepo.NewStoreProfileRepository(store, entity.StoreProfile{
		Name:    "Cafe Bliss",
		Address: "Shop 11, Rooftop Central Park DHA phase 2",
		Phone:   "+92 3340505725",
		Cashier: "Baqir",
	})
	require.NoError(t, err)

	return &fixture{
		ctx:          context.Background(),
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		saleRepo:     saleRepo,
		profileRepo:  profileRepo,
		catalog:      NewCatalogService(categoryRepo, itemRepo),
		cart:         NewCartService(itemRepo, saleRepo, 0.05),
		ledger:       NewLedgerService(saleRepo),
	}
}

func (f *fixture) addCategory(t *testing.T, name string) *entity.Category {
	t.Helper()

	category, err := f.catalog.AddCategory(f.ctx, &AddCategoryInput{Name: name, Color: "#8D6E63"})
	require.NoError(t, err)
	return category
}

func (f *fixture) addItem(t *testing.T, name, price string, category *entity.Category) *entity.Item {
	t.Helper()

	item, err := f.catalog.AddItem(f.ctx, &AddItemInput{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	return item
}

func requireDecimalEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}
