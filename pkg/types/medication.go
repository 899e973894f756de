package types

import "time"

// StockStatus classifies a medication's stock level
type StockStatus string

const (
	StockOut StockStatus = "OUT_OF_STOCK"
	StockLow StockStatus = "LOW_STOCK"
	StockOK  StockStatus = "IN_STOCK"
)

// ClassifyStock derives the stock status from quantity and minimum stock.
// Zero quantity is OUT regardless of the threshold.
func ClassifyStock(quantity, minimumStock int) StockStatus {
	switch {
	case quantity == 0:
		return StockOut
	case quantity <= minimumStock:
		return StockLow
	default:
		return StockOK
	}
}

// Medication represents a medication in the inventory
type Medication struct {
	ID           string      `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	SKU          string      `json:"sku" db:"sku"`
	Description  string      `json:"description" db:"description"`
	Manufacturer string      `json:"manufacturer" db:"manufacturer"`
	Dosage       string      `json:"dosage" db:"dosage"`
	Unit         string      `json:"unit" db:"unit"`
	Quantity     int         `json:"quantity" db:"quantity"`
	MinimumStock int         `json:"minimumStock" db:"minimum_stock"`
	Price        float64     `json:"price" db:"price"`
	StockStatus  StockStatus `json:"stockStatus"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}

// MedicationRequest carries medication create and update payloads
type MedicationRequest struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Description  string  `json:"description"`
	Manufacturer string  `json:"manufacturer"`
	Dosage       string  `json:"dosage"`
	Unit         string  `json:"unit"`
	Quantity     int     `json:"quantity"`
	MinimumStock int     `json:"minimumStock"`
	Price        float64 `json:"price"`
}

// StockAdjustmentRequest carries a signed stock delta
type StockAdjustmentRequest struct {
	Delta int `json:"delta"`
}
