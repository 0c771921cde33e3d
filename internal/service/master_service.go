package service

import (
	"strings"

	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
)

// MasterService manages the small lookup tables (units and payment methods).
type MasterService interface {
	CreateUnit(name string, actor Actor) (*model.Unit, error)
	GetUnits() ([]model.Unit, error)
	CreatePaymentMethod(name string, actor Actor) (*model.PaymentMethod, error)
	GetPaymentMethods() ([]model.PaymentMethod, error)
}

type masterService struct {
	unitRepo   repository.UnitRepository
	methodRepo repository.PaymentMethodRepository
}

func NewMasterService(uRepo repository.UnitRepository, mRepo repository.PaymentMethodRepository) MasterService {
	return &masterService{unitRepo: uRepo, methodRepo: mRepo}
}

func (s *masterService) CreateUnit(name string, actor Actor) (*model.Unit, error) {
	unit := &model.Unit{Name: strings.TrimSpace(name)}
	if err := validateStruct(unit); err != nil {
		return nil, err
	}
	taken, err := s.unitRepo.ExistsByName(unit.Name)
	if err != nil {
		return nil, wrapDB(err, "unit")
	}
	if taken {
		return nil, validationErr("unit '%s' already exists", unit.Name)
	}
	unit.CreatedBy = actor.ID
	unit.UpdatedBy = actor.ID
	if err := s.unitRepo.Create(unit); err != nil {
		return nil, wrapDB(err, "unit")
	}
	return unit, nil
}

func (s *masterService) GetUnits() ([]model.Unit, error) {
	units, err := s.unitRepo.FindAll()
	return units, wrapDB(err, "units")
}

func (s *masterService) CreatePaymentMethod(name string, actor Actor) (*model.PaymentMethod, error) {
	method := &model.PaymentMethod{Name: strings.TrimSpace(name)}
	if err := validateStruct(method); err != nil {
		return nil, err
	}
	taken, err := s.methodRepo.ExistsByName(method.Name)
	if err != nil {
		return nil, wrapDB(err, "payment method")
	}
	if taken {
		return nil, validationErr("payment method '%s' already exists", method.Name)
	}
	method.CreatedBy = actor.ID
	method.UpdatedBy = actor.ID
	if err := s.methodRepo.Create(method); err != nil {
		return nil, wrapDB(err, "payment method")
	}
	return method, nil
}

func (s *masterService) GetPaymentMethods() ([]model.PaymentMethod, error) {
	methods, err := s.methodRepo.FindAll()
	return methods, wrapDB(err, "payment methods")
}
