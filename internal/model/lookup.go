package model

// Unit is a selectable unit of measure for products (pcs, kg, box...).
type Unit struct {
	BaseModel
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required,max=50"`
}

// PaymentMethod is a selectable way of paying (cash, upi, cheque...).
type PaymentMethod struct {
	BaseModel
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required,max=50"`
}
