package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer is the counterparty of sale orders.
type Customer struct {
	BaseModel
	Name    string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone   string  `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required,min=6,max=20"`
	Aadhaar *string `gorm:"type:varchar(20);uniqueIndex" json:"aadhaar,omitempty" validate:"omitempty,len=12,numeric"`
	Address string  `gorm:"type:text" json:"address"`
}

// Vendor is the counterparty of purchase orders. Products lists the ids of
// the products this vendor supplies.
type Vendor struct {
	BaseModel
	Name     string                       `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone    string                       `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required,min=6,max=20"`
	Aadhaar  *string                      `gorm:"type:varchar(20);uniqueIndex" json:"aadhaar,omitempty" validate:"omitempty,len=12,numeric"`
	Address  string                       `gorm:"type:text" json:"address"`
	Products datatypes.JSONSlice[uuid.UUID] `gorm:"not null" json:"products"`
}

// BeforeSave keeps the products column a JSON array rather than null.
func (v *Vendor) BeforeSave(tx *gorm.DB) error {
	if v.Products == nil {
		v.Products = datatypes.JSONSlice[uuid.UUID]{}
	}
	return nil
}

// Supplies reports whether the vendor lists the given product.
func (v *Vendor) Supplies(productID uuid.UUID) bool {
	for _, id := range v.Products {
		if id == productID {
			return true
		}
	}
	return false
}
