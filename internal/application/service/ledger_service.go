package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
	"github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/pkg/apperror"
	"github.com/sangkips/blisspos/pkg/pagination"
	"github.com/shopspring/decimal"
)

// SortKey selects the ordering of a sales history listing.
type SortKey string

const (
	// SortByDate orders sales most recent first.
	SortByDate SortKey = "date"
	// SortByTotal orders sales largest total first.
	SortByTotal SortKey = "total"
)

// LedgerService provides read access to the append-only sales history:
// day-granularity date filtering, sorting, pagination and aggregate
// statistics. It never mutates the ledger.
type LedgerService struct {
	saleRepo repository.SaleRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(saleRepo repository.SaleRepository) *LedgerService {
	return &LedgerService{saleRepo: saleRepo}
}

// LedgerStats represents aggregate statistics over a set of sales.
type LedgerStats struct {
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
}

// ListSales returns one page of the sales history, filtered to the calendar
// day of date when date is non-nil (time of day is ignored, local timezone)
// and sorted by the given key. Filtering and sorting operate on a copy of
// the ledger.
func (s *LedgerService) ListSales(ctx context.Context, date *time.Time, sortBy SortKey, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, err := s.filterAndSort(ctx, date, sortBy)
	if err != nil {
		return nil, err
	}

	params.Validate()
	page, total := pagination.Slice(sales, params)
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(page, pag), nil
}

// Stats returns aggregate statistics over the sales matching the optional
// date filter. The average is zero when no sales match.
func (s *LedgerService) Stats(ctx context.Context, date *time.Time) (*LedgerStats, error) {
	sales, err := s.filterAndSort(ctx, date, SortByDate)
	if err != nil {
		return nil, err
	}
	return Aggregate(sales), nil
}

// GetSale retrieves a single sale by ID, for re-viewing its receipt from
// the history.
func (s *LedgerService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// Aggregate computes total, count and average over a set of sales.
func Aggregate(sales []entity.Sale) *LedgerStats {
	stats := &LedgerStats{
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
	}
	for _, sale := range sales {
		stats.TotalAmount = stats.TotalAmount.Add(sale.Total)
	}
	stats.TransactionCount = len(sales)
	if stats.TransactionCount > 0 {
		stats.AverageAmount = stats.TotalAmount.Div(decimal.NewFromInt(int64(stats.TransactionCount)))
	}
	return stats
}

func (s *LedgerService) filterAndSort(ctx context.Context, date *time.Time, sortBy SortKey) ([]entity.Sale, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if date != nil {
		filtered := sales[:0]
		for _, sale := range sales {
			if sameDay(sale.CreatedAt, *date) {
				filtered = append(filtered, sale)
			}
		}
		sales = filtered
	}

	switch sortBy {
	case SortByTotal:
		sort.SliceStable(sales, func(i, j int) bool {
			return sales[i].Total.GreaterThan(sales[j].Total)
		})
	default:
		sort.SliceStable(sales, func(i, j int) bool {
			return sales[i].CreatedAt.After(sales[j].CreatedAt)
		})
	}

	return sales, nil
}

// sameDay reports whether a and b fall on the same calendar day in local
// time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
