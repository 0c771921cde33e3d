package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "order:create"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

var DefaultPrivileges = []Privilege{
	{Code: "product:create", Name: "Create Product"},
	{Code: "product:update", Name: "Update Product"},
	{Code: "product:delete", Name: "Delete Product"},
	{Code: "product:adjust", Name: "Adjust Product Quantity"},
	{Code: "customer:create", Name: "Create Customer"},
	{Code: "customer:update", Name: "Update Customer"},
	{Code: "customer:delete", Name: "Delete Customer"},
	{Code: "vendor:create", Name: "Create Vendor"},
	{Code: "vendor:update", Name: "Update Vendor"},
	{Code: "vendor:delete", Name: "Delete Vendor"},
	{Code: "order:create", Name: "Create Order"},
	{Code: "order:update", Name: "Update Order"},
	{Code: "order:status", Name: "Change Order Status"},
	{Code: "payment:create", Name: "Record Payment"},
	{Code: "master:manage", Name: "Manage Units and Payment Methods"},
	{Code: "dashboard:view", Name: "View Dashboard"},
}
