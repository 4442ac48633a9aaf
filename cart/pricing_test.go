package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"whole pounds", decimal.NewFromInt(42), "£42.00"},
		{"pounds and pence", decimal.NewFromFloat(42.5), "£42.50"},
		{"rounds half up", decimal.NewFromFloat(19.995), "£20.00"},
		{"zero", decimal.Zero, "£0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatGBP(tt.amount)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, " ", "symbol and amount must not be separated")
		})
	}
}
