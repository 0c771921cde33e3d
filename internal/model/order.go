package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderType string

const (
	OrderSale     OrderType = "sale"
	OrderPurchase OrderType = "purchase"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusTrashed   OrderStatus = "trashed"
)

type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "paid"
	PaymentPartiallyPaid PaymentStatus = "partiallypaid"
	PaymentCredit        PaymentStatus = "credit"
)

type DiscountType string

const (
	DiscountFlat       DiscountType = "flat"
	DiscountPercentage DiscountType = "percentage"
)

var hundred = decimal.NewFromInt(100)

// OrderItem is a snapshot of a product line taken when the order was placed.
// Later product edits do not change it.
type OrderItem struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit,omitempty"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	BaseModel
	Type       OrderType  `gorm:"type:varchar(10);not null;index" json:"type"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Customer   *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	VendorID   *uuid.UUID `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Vendor     *Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`

	Items datatypes.JSONSlice[OrderItem] `gorm:"not null" json:"items"`

	TotalPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_price"`
	DiscountType    DiscountType    `gorm:"type:varchar(12);not null;default:'flat'" json:"discount_type"`
	DiscountValue   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"discount_value"`
	TotalPayable    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_payable"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"paid_amount"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"remaining_amount"`

	PaymentStatus PaymentStatus `gorm:"type:varchar(15);not null;index" json:"payment_status"`
	Status        OrderStatus   `gorm:"type:varchar(10);not null;index" json:"status"`
	Remarks       string        `gorm:"type:text" json:"remarks,omitempty"`
	Date          time.Time     `gorm:"not null;index" json:"date"`
}

// IsActive reports whether the order's stock effect is currently applied.
func (o *Order) IsActive() bool {
	return o.Status == StatusCreated || o.Status == StatusCompleted
}

// StockSign is the direction an item quantity moves stock while the order is
// active: -1 for a sale, +1 for a purchase.
func (o *Order) StockSign() int {
	if o.Type == OrderPurchase {
		return 1
	}
	return -1
}

// DiscountAmount converts the discount type/value pair into a currency amount.
func (o *Order) DiscountAmount() decimal.Decimal {
	if o.DiscountType == DiscountPercentage {
		return o.TotalPrice.Mul(o.DiscountValue).Div(hundred).Round(2)
	}
	return o.DiscountValue
}

// Recalculate derives total_price, total_payable, remaining_amount and
// payment_status from the items, discount and paid amount.
func (o *Order) Recalculate() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	o.TotalPrice = total
	o.TotalPayable = decimal.Max(total.Sub(o.DiscountAmount()), decimal.Zero)
	o.RemainingAmount = decimal.Max(o.TotalPayable.Sub(o.PaidAmount), decimal.Zero)
	o.PaymentStatus = DerivePaymentStatus(o.PaidAmount, o.RemainingAmount)
}

// QuantityByItem maps each item id to its ordered quantity.
func (o *Order) QuantityByItem() map[uuid.UUID]int {
	m := make(map[uuid.UUID]int, len(o.Items))
	for _, it := range o.Items {
		m[it.ItemID] += it.Quantity
	}
	return m
}

func DerivePaymentStatus(paid, remaining decimal.Decimal) PaymentStatus {
	switch {
	case remaining.IsZero():
		return PaymentPaid
	case paid.IsPositive():
		return PaymentPartiallyPaid
	default:
		return PaymentCredit
	}
}

var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusCreated:   {StatusCompleted, StatusCancelled, StatusTrashed},
	StatusCompleted: {StatusCancelled, StatusTrashed},
	StatusCancelled: {StatusTrashed},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusCreated, StatusCompleted, StatusCancelled, StatusTrashed:
		return true
	}
	return false
}

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPaid, PaymentPartiallyPaid, PaymentCredit:
		return true
	}
	return false
}
