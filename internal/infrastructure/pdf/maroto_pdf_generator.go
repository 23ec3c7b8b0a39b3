// Package pdf genera el ticket imprimible de un pedido.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Restaurante │ Pedido N° + Fecha  │
//	│  ───────────────────────────────────────  │
//	│  Mesa / Cliente / Estado                  │
//	│  ───────────────────────────────────────  │
//	│  TABLA: Cant | Plato | P.Unit | Subtotal  │
//	│  ───────────────────────────────────────  │
//	│  TOTAL                                    │
//	│  QR con la referencia del pedido          │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 122, Green: 30, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	restaurant string
}

// NewMarotoReceiptGenerator construye el generador. restaurant aparece en la cabecera.
func NewMarotoReceiptGenerator(restaurant string) *MarotoReceiptGenerator {
	if restaurant == "" {
		restaurant = "Restaurant"
	}
	return &MarotoReceiptGenerator{restaurant: restaurant}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, receipt *usecase.Receipt) ([]byte, error) {
	if receipt == nil {
		return nil, fmt.Errorf("pdf: receipt is nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Order %d", receipt.OrderID), true).
		WithAuthor(g.restaurant, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(receipt.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(receipt.Total))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(receipt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReceiptGenerator) headerRow(r *usecase.Receipt) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.restaurant, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("ORDER #%d", r.OrderID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(r.CreatedAt.Format("2006-01-02 15:04 UTC"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func infoRow(r *usecase.Receipt) core.Row {
	table := "-"
	if r.TableNumber != nil {
		table = fmt.Sprintf("%d", *r.TableNumber)
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Table: %s   |   Customer: %s   |   Status: %s",
				table, nonEmpty(r.CustomerName, "-"), r.Status,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(7).Add(
		h("Qty", 1, align.Center),
		h("Item", 6, align.Left),
		h("Unit", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: una fila por línea; las notas van debajo del nombre.
func tableLineRows(lines []usecase.ReceiptLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.Name
		height := 6.0
		if l.Notes != "" {
			name += "\n  " + l.Notes
			height = 10
		}
		rows = append(rows, row.New(height).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(name,
				props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(2).Add(text.New(formatMoney(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(formatMoney(l.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func qrRow(r *usecase.Receipt) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(fmt.Sprintf("order:%d", r.OrderID), props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Prices reflect the current menu.", props.Text{
				Size: 7, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney: "$" + parte entera con comas de miles + dos decimales.
// Ej: 1234.5 → "$1,234.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf) + "." + frac
}
