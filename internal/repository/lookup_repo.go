package repository

import (
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"

	"gorm.io/gorm"
)

type UnitRepository interface {
	Create(unit *model.Unit) error
	FindAll() ([]model.Unit, error)
	ExistsByName(name string) (bool, error)
}

type unitRepo struct {
	db *gorm.DB
}

func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{db}
}

func (r *unitRepo) Create(unit *model.Unit) error {
	return r.db.Create(unit).Error
}

func (r *unitRepo) FindAll() ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.Order("name ASC").Find(&units).Error
	return units, err
}

func (r *unitRepo) ExistsByName(name string) (bool, error) {
	return exists(r.db.Model(&model.Unit{}).Where("LOWER(name) = LOWER(?)", name))
}

type PaymentMethodRepository interface {
	Create(method *model.PaymentMethod) error
	FindAll() ([]model.PaymentMethod, error)
	ExistsByName(name string) (bool, error)
}

type paymentMethodRepo struct {
	db *gorm.DB
}

func NewPaymentMethodRepo(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepo{db}
}

func (r *paymentMethodRepo) Create(method *model.PaymentMethod) error {
	return r.db.Create(method).Error
}

func (r *paymentMethodRepo) FindAll() ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	err := r.db.Order("name ASC").Find(&methods).Error
	return methods, err
}

func (r *paymentMethodRepo) ExistsByName(name string) (bool, error) {
	return exists(r.db.Model(&model.PaymentMethod{}).Where("LOWER(name) = LOWER(?)", name))
}
