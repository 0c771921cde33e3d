package repository

import (
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(tx *gorm.DB, vendor *model.Vendor) error
	Update(tx *gorm.DB, vendor *model.Vendor) error
	Delete(tx *gorm.DB, id uuid.UUID, deletedBy string) error
	FindByID(id uuid.UUID) (*model.Vendor, error)
	FindAll(search string) ([]model.Vendor, error)
	ExistsByPhone(phone string, excludeID uuid.UUID) (bool, error)
	ExistsByAadhaar(aadhaar string, excludeID uuid.UUID) (bool, error)
}

type vendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) VendorRepository {
	return &vendorRepo{db}
}

func (r *vendorRepo) Create(tx *gorm.DB, vendor *model.Vendor) error {
	return tx.Create(vendor).Error
}

func (r *vendorRepo) Update(tx *gorm.DB, vendor *model.Vendor) error {
	return tx.Save(vendor).Error
}

func (r *vendorRepo) Delete(tx *gorm.DB, id uuid.UUID, deletedBy string) error {
	if err := tx.Model(&model.Vendor{}).Where("id = ?", id).Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Vendor{}, "id = ?", id).Error
}

func (r *vendorRepo) FindByID(id uuid.UUID) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepo) FindAll(search string) ([]model.Vendor, error) {
	var vendors []model.Vendor
	q := r.db.Order("name ASC")
	if search != "" {
		p := likePattern(search)
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\' OR phone LIKE ? ESCAPE '\\'", p, p)
	}
	err := q.Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepo) ExistsByPhone(phone string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.Model(&model.Vendor{}).Where("phone = ? AND id <> ?", phone, excludeID))
}

func (r *vendorRepo) ExistsByAadhaar(aadhaar string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.Model(&model.Vendor{}).Where("aadhaar = ? AND id <> ?", aadhaar, excludeID))
}
