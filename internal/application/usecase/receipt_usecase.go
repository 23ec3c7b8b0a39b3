package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptLine línea del ticket con precio unitario y subtotal ya calculados.
type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Notes     string
}

// Receipt datos que necesita el generador de PDF para el ticket de un pedido.
type Receipt struct {
	OrderID      int64
	TableNumber  *int
	CustomerName string
	Status       string
	CreatedAt    time.Time
	Lines        []ReceiptLine
	Total        decimal.Decimal
}

// ReceiptPDFGenerator puerto de salida para renderizar el ticket (implementado con Maroto).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *Receipt) ([]byte, error)
}

// ReceiptUseCase genera el ticket PDF de un pedido con los precios actuales del menú.
type ReceiptUseCase struct {
	orders    *OrderUseCase
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orders *OrderUseCase, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, generator: generator}
}

// BuildReceipt arma el ticket (sin renderizar). domain.ErrNotFound si el pedido no existe.
func (uc *ReceiptUseCase) BuildReceipt(ctx context.Context, orderID int64) (*Receipt, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	r := &Receipt{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		Lines:       make([]ReceiptLine, 0, len(order.Items)),
		Total:       decimal.Zero,
	}
	if order.CustomerName != nil {
		r.CustomerName = *order.CustomerName
	}
	for _, it := range order.Items {
		line := ReceiptLine{
			Name:      fmt.Sprintf("#%d", it.MenuItemID),
			Quantity:  it.Quantity,
			UnitPrice: decimal.Zero,
		}
		if it.MenuItem != nil {
			line.Name = it.MenuItem.Name
			line.UnitPrice = it.MenuItem.Price
		}
		if it.Notes != nil {
			line.Notes = *it.Notes
		}
		line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		r.Total = r.Total.Add(line.Subtotal)
		r.Lines = append(r.Lines, line)
	}
	return r, nil
}

// DownloadReceiptPDF devuelve los bytes del PDF y un nombre de archivo sugerido.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, orderID int64) (pdfBytes []byte, filename string, err error) {
	r, err := uc.BuildReceipt(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generate pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("order-%d.pdf", r.OrderID), nil
}
