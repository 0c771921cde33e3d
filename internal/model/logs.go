package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLog struct {
	LogBase
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Documents string    `gorm:"type:text" json:"documents,omitempty"`
}

type PaymentLog struct {
	LogBase
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"amount"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	Documents     string          `gorm:"type:text" json:"documents,omitempty"`

	DocumentURL string `gorm:"-" json:"document_url,omitempty"`
}

type CustomerLog struct {
	LogBase
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
}

type ProductLog struct {
	LogBase
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
}

type VendorLog struct {
	LogBase
	VendorID uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`
}

// DocumentURL resolves a stored upload filename against the storage bucket base URL.
// Absolute URLs and empty names are returned unchanged.
func DocumentURL(baseURL, filename string) string {
	if filename == "" || baseURL == "" {
		return filename
	}
	if strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://") {
		return filename
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(filename, "/")
}
