package repository

import (
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogRepository appends to and reads the per-entity audit tables.
// Rows are never updated or deleted.
type LogRepository interface {
	AppendOrderLog(tx *gorm.DB, entry *model.OrderLog) error
	AppendPaymentLog(tx *gorm.DB, entry *model.PaymentLog) error
	AppendCustomerLog(tx *gorm.DB, entry *model.CustomerLog) error
	AppendProductLog(tx *gorm.DB, entry *model.ProductLog) error
	AppendVendorLog(tx *gorm.DB, entry *model.VendorLog) error

	OrderLogs(orderID uuid.UUID) ([]model.OrderLog, error)
	PaymentLogs(orderID uuid.UUID) ([]model.PaymentLog, error)
	CustomerLogs(customerID uuid.UUID) ([]model.CustomerLog, error)
	ProductLogs(productID uuid.UUID) ([]model.ProductLog, error)
	VendorLogs(vendorID uuid.UUID) ([]model.VendorLog, error)
}

type logRepo struct {
	db *gorm.DB
}

func NewLogRepo(db *gorm.DB) LogRepository {
	return &logRepo{db}
}

func (r *logRepo) AppendOrderLog(tx *gorm.DB, entry *model.OrderLog) error {
	return tx.Create(entry).Error
}

func (r *logRepo) AppendPaymentLog(tx *gorm.DB, entry *model.PaymentLog) error {
	return tx.Create(entry).Error
}

func (r *logRepo) AppendCustomerLog(tx *gorm.DB, entry *model.CustomerLog) error {
	return tx.Create(entry).Error
}

func (r *logRepo) AppendProductLog(tx *gorm.DB, entry *model.ProductLog) error {
	return tx.Create(entry).Error
}

func (r *logRepo) AppendVendorLog(tx *gorm.DB, entry *model.VendorLog) error {
	return tx.Create(entry).Error
}

func (r *logRepo) OrderLogs(orderID uuid.UUID) ([]model.OrderLog, error) {
	return listLogs[model.OrderLog](r.db, "order_id", orderID)
}

func (r *logRepo) PaymentLogs(orderID uuid.UUID) ([]model.PaymentLog, error) {
	return listLogs[model.PaymentLog](r.db, "order_id", orderID)
}

func (r *logRepo) CustomerLogs(customerID uuid.UUID) ([]model.CustomerLog, error) {
	return listLogs[model.CustomerLog](r.db, "customer_id", customerID)
}

func (r *logRepo) ProductLogs(productID uuid.UUID) ([]model.ProductLog, error) {
	return listLogs[model.ProductLog](r.db, "product_id", productID)
}

func (r *logRepo) VendorLogs(vendorID uuid.UUID) ([]model.VendorLog, error) {
	return listLogs[model.VendorLog](r.db, "vendor_id", vendorID)
}

// listLogs returns the entries for one entity, oldest first.
func listLogs[T any](db *gorm.DB, column string, id uuid.UUID) ([]T, error) {
	var entries []T
	err := db.Where(column+" = ?", id).Order("created_at ASC").Find(&entries).Error
	return entries, err
}
