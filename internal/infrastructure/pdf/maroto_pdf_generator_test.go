package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-menu-api/internal/application/usecase"
)

func TestGenerateReceiptPDF(t *testing.T) {
	table := 4
	receipt := &usecase.Receipt{
		OrderID:      12,
		TableNumber:  &table,
		CustomerName: "Ana",
		Status:       "pending",
		CreatedAt:    time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC),
		Lines: []usecase.ReceiptLine{
			{Name: "Cola", Quantity: 2, UnitPrice: decimal.RequireFromString("2.50"), Subtotal: decimal.RequireFromString("5.00")},
			{Name: "Pizza", Quantity: 1, UnitPrice: decimal.RequireFromString("10"), Subtotal: decimal.RequireFromString("10"), Notes: "extra cheese"},
		},
		Total: decimal.RequireFromString("15"),
	}

	out, err := NewMarotoReceiptGenerator("Casa Menu").GenerateReceiptPDF(context.Background(), receipt)
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateReceiptPDF_Nil(t *testing.T) {
	_, err := NewMarotoReceiptGenerator("").GenerateReceiptPDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", formatMoney(decimal.Zero))
	assert.Equal(t, "$2.50", formatMoney(decimal.RequireFromString("2.5")))
	assert.Equal(t, "$1,234.50", formatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$1,000,000.00", formatMoney(decimal.RequireFromString("1000000")))
}
