package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name     string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Quantity int             `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price" validate:"gte=0"`
	Unit     string          `gorm:"type:varchar(20)" json:"unit"`
}
