package repository

import (
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(tx *gorm.DB, customer *model.Customer) error
	Update(tx *gorm.DB, customer *model.Customer) error
	Delete(tx *gorm.DB, id uuid.UUID, deletedBy string) error
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindAll(search string) ([]model.Customer, error)
	ExistsByPhone(phone string, excludeID uuid.UUID) (bool, error)
	ExistsByAadhaar(aadhaar string, excludeID uuid.UUID) (bool, error)
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(tx *gorm.DB, customer *model.Customer) error {
	return tx.Create(customer).Error
}

func (r *customerRepo) Update(tx *gorm.DB, customer *model.Customer) error {
	return tx.Save(customer).Error
}

func (r *customerRepo) Delete(tx *gorm.DB, id uuid.UUID, deletedBy string) error {
	if err := tx.Model(&model.Customer{}).Where("id = ?", id).Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Customer{}, "id = ?", id).Error
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindAll(search string) ([]model.Customer, error) {
	var customers []model.Customer
	q := r.db.Order("name ASC")
	if search != "" {
		p := likePattern(search)
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\' OR phone LIKE ? ESCAPE '\\'", p, p)
	}
	err := q.Find(&customers).Error
	return customers, err
}

func (r *customerRepo) ExistsByPhone(phone string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.Model(&model.Customer{}).Where("phone = ? AND id <> ?", phone, excludeID))
}

func (r *customerRepo) ExistsByAadhaar(aadhaar string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.Model(&model.Customer{}).Where("aadhaar = ? AND id <> ?", aadhaar, excludeID))
}
