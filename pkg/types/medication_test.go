package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		minimumStock int
		expected     StockStatus
	}{
		{"zero quantity is out of stock", 0, 10, StockOut},
		{"zero quantity with zero threshold is out of stock", 0, 0, StockOut},
		{"below threshold is low", 5, 10, StockLow},
		{"at threshold is low", 10, 10, StockLow},
		{"above threshold is in stock", 11, 10, StockOK},
		{"positive quantity with zero threshold is in stock", 1, 0, StockOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyStock(tt.quantity, tt.minimumStock))
		})
	}
}
