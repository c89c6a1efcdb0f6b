package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
	"github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/pkg/printer"
	"github.com/shopspring/decimal"
)

// ReceiptService projects sales into printable receipts and drives the
// thermal printer. Receipts are derived views, never persisted.
type ReceiptService struct {
	printer     printer.Printer
	profileRepo repository.StoreProfileRepository
	ledger      *LedgerService
	printerType string
	width       int
	currency    string
}

// NewReceiptService creates a new receipt service. Width is the printer's
// character width (32 for 58mm paper).
func NewReceiptService(
	p printer.Printer,
	profileRepo repository.StoreProfileRepository,
	ledger *LedgerService,
	printerType string,
	width int,
	currency string,
) *ReceiptService {
	return &ReceiptService{
		printer:     p,
		profileRepo: profileRepo,
		ledger:      ledger,
		printerType: printerType,
		width:       width,
		currency:    currency,
	}
}

// BuildReceipt projects a sale plus the store profile into a receipt view.
// Pure aside from the profile read: no printing, no persistence.
func (s *ReceiptService) BuildReceipt(ctx context.Context, sale *entity.Sale) (*entity.Receipt, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: profile.Name,
			Address:   profile.Address,
			Phone:     profile.Phone,
		},
		ReceiptNumber: sale.ReceiptNumber,
		Date:          sale.CreatedAt.Format("2006-01-02"),
		Time:          sale.CreatedAt.Format("15:04:05"),
		Cashier:       profile.Cashier,
		PaymentMethod: strings.ToUpper(sale.PaymentMethod.String()),
		Subtotal:      sale.Subtotal,
		Discount:      sale.Discount,
		Tax:           sale.Tax,
		Total:         sale.Total,
		Footer: []string{
			"Thank you for your business!",
			"Please come again",
		},
	}

	for _, line := range sale.Items {
		receipt.Lines = append(receipt.Lines, entity.ReceiptLine{
			Name:      line.Item.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Item.Price,
			Total:     line.LineTotal(),
		})
	}

	return receipt, nil
}

// ReceiptForSale builds the receipt for a historical sale.
func (s *ReceiptService) ReceiptForSale(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.ledger.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return s.BuildReceipt(ctx, sale)
}

// PrintSale builds the receipt for a sale and sends it to the printer.
// The receipt is returned even when printing fails, so the caller can still
// display it.
func (s *ReceiptService) PrintSale(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.ReceiptForSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt, s.width, s.currency)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (sale %s): %v", saleID, err)
		return receipt, err
	}
	return receipt, nil
}

// PrinterStatus reports the current printer configuration and reachability.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status returns the printer connection status.
func (s *ReceiptService) Status() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a short test page to the printer.
func (s *ReceiptService) TestPrint() error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Separator('-').
		Text("If you can read this,").
		Text("the printer is working.").
		FeedLines(3).
		PartialCut()
	return s.printer.Print(doc.Bytes())
}

// FormatReceipt converts a receipt view into ESC/POS bytes. The discount
// line appears only when a discount was applied.
func FormatReceipt(r *entity.Receipt, width int, currency string) []byte {
	doc := printer.NewDocument(width)

	money := func(d decimal.Decimal) string {
		return currency + d.StringFixed(2)
	}

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNumber).
		KeyValue("Date:", r.Date).
		KeyValue("Time:", r.Time)
	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	doc.KeyValue("Payment:", r.PaymentMethod)

	doc.Separator('-')

	// Line items: extended price per line, unit price shown for multiples
	for _, line := range r.Lines {
		doc.ItemLine(line.Quantity, line.Name, money(line.Total))
		if line.Quantity > 1 {
			doc.TextF("  @ %s each", money(line.UnitPrice))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", money(r.Subtotal))
	if r.Discount.IsPositive() {
		doc.KeyValue("Discount:", "-"+money(r.Discount))
	}
	doc.KeyValue("Tax:", money(r.Tax))
	doc.SetBold(true).
		KeyValue("TOTAL:", money(r.Total)).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter)
	for _, line := range r.Footer {
		doc.Text(line)
	}
	doc.SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
