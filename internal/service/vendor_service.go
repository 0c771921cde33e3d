package service

import (
	"fmt"
	"log"

	"github.com/vpriyankaa/sales-admin-sub000/internal/audit"
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VendorService interface {
	CreateVendor(req *model.Vendor, actor Actor) error
	UpdateVendor(id uuid.UUID, req *model.Vendor, actor Actor) (*model.Vendor, error)
	DeleteVendor(id uuid.UUID, actor Actor) error
	GetVendors(search string) ([]model.Vendor, error)
	GetVendorByID(id uuid.UUID) (*model.Vendor, error)
	GetVendorLogs(id uuid.UUID) ([]model.VendorLog, error)
}

var vendorFields = []audit.Field[*model.Vendor]{
	{Name: "name", Get: func(v *model.Vendor) any { return v.Name }},
	{Name: "phone", Get: func(v *model.Vendor) any { return v.Phone }},
	{Name: "aadhaar", Get: func(v *model.Vendor) any { return v.Aadhaar }},
	{Name: "address", Get: func(v *model.Vendor) any { return v.Address }},
	{Name: "products", Get: func(v *model.Vendor) any { return fmt.Sprintf("%d product(s)", len(v.Products)) }},
}

type vendorService struct {
	vendorRepo  repository.VendorRepository
	productRepo repository.ProductRepository
	logRepo     repository.LogRepository
	db          *gorm.DB
}

func NewVendorService(vRepo repository.VendorRepository, pRepo repository.ProductRepository, lRepo repository.LogRepository, db *gorm.DB) VendorService {
	return &vendorService{vendorRepo: vRepo, productRepo: pRepo, logRepo: lRepo, db: db}
}

func (s *vendorService) CreateVendor(req *model.Vendor, actor Actor) error {
	normalizeParty(&req.Name, &req.Phone, &req.Aadhaar, &req.Address)
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := s.checkUnique(req.Phone, req.Aadhaar, uuid.Nil); err != nil {
		return err
	}
	products, err := s.checkProducts(req.Products)
	if err != nil {
		return err
	}

	req.ID = uuid.Nil
	req.Products = products
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.vendorRepo.Create(tx, req); err != nil {
			return wrapDB(err, "vendor")
		}
		return wrapDB(s.logRepo.AppendVendorLog(tx, &model.VendorLog{
			LogBase:  model.LogBase{Action: "Vendor created.", CreatedBy: actor.ID},
			VendorID: req.ID,
		}), "vendor log")
	})
	if err != nil {
		log.Printf("create vendor %q: %v", req.Name, err)
	}
	return err
}

func (s *vendorService) UpdateVendor(id uuid.UUID, req *model.Vendor, actor Actor) (*model.Vendor, error) {
	normalizeParty(&req.Name, &req.Phone, &req.Aadhaar, &req.Address)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	existing, err := s.vendorRepo.FindByID(id)
	if err != nil {
		return nil, wrapDB(err, "vendor")
	}
	if err := s.checkUnique(req.Phone, req.Aadhaar, id); err != nil {
		return nil, err
	}
	products, err := s.checkProducts(req.Products)
	if err != nil {
		return nil, err
	}

	next := *existing
	next.Name = req.Name
	next.Phone = req.Phone
	next.Aadhaar = req.Aadhaar
	next.Address = req.Address
	next.Products = products
	next.UpdatedBy = actor.ID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.vendorRepo.Update(tx, &next); err != nil {
			return wrapDB(err, "vendor")
		}
		return wrapDB(s.logRepo.AppendVendorLog(tx, &model.VendorLog{
			LogBase:  model.LogBase{Action: "Vendor updated.", Comments: audit.Describe(existing, &next, vendorFields), CreatedBy: actor.ID},
			VendorID: id,
		}), "vendor log")
	})
	if err != nil {
		log.Printf("update vendor %s: %v", id, err)
		return nil, err
	}
	return &next, nil
}

func (s *vendorService) DeleteVendor(id uuid.UUID, actor Actor) error {
	if _, err := s.vendorRepo.FindByID(id); err != nil {
		return wrapDB(err, "vendor")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.vendorRepo.Delete(tx, id, actor.ID); err != nil {
			return wrapDB(err, "vendor")
		}
		return wrapDB(s.logRepo.AppendVendorLog(tx, &model.VendorLog{
			LogBase:  model.LogBase{Action: "Vendor deleted.", CreatedBy: actor.ID},
			VendorID: id,
		}), "vendor log")
	})
	if err != nil {
		log.Printf("delete vendor %s: %v", id, err)
	}
	return err
}

func (s *vendorService) GetVendors(search string) ([]model.Vendor, error) {
	vendors, err := s.vendorRepo.FindAll(search)
	return vendors, wrapDB(err, "vendors")
}

func (s *vendorService) GetVendorByID(id uuid.UUID) (*model.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(id)
	if err != nil {
		return nil, wrapDB(err, "vendor")
	}
	return vendor, nil
}

func (s *vendorService) GetVendorLogs(id uuid.UUID) ([]model.VendorLog, error) {
	if _, err := s.GetVendorByID(id); err != nil {
		return nil, err
	}
	logs, err := s.logRepo.VendorLogs(id)
	return logs, wrapDB(err, "vendor logs")
}

// checkProducts drops duplicate ids and makes sure every listed product exists.
func (s *vendorService) checkProducts(ids []uuid.UUID) (datatypes.JSONSlice[uuid.UUID], error) {
	unique := make(datatypes.JSONSlice[uuid.UUID], 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return unique, nil
	}

	found, err := s.productRepo.FindByIDs(unique)
	if err != nil {
		return nil, wrapDB(err, "products")
	}
	if len(found) != len(unique) {
		known := make(map[uuid.UUID]bool, len(found))
		for _, p := range found {
			known[p.ID] = true
		}
		for _, id := range unique {
			if !known[id] {
				return nil, notFoundErr(fmt.Sprintf("product %s", id))
			}
		}
	}
	return unique, nil
}

func (s *vendorService) checkUnique(phone string, aadhaar *string, excludeID uuid.UUID) error {
	taken, err := s.vendorRepo.ExistsByPhone(phone, excludeID)
	if err != nil {
		return wrapDB(err, "vendor")
	}
	if taken {
		return validationErr("a vendor with phone %s already exists", phone)
	}
	if aadhaar == nil {
		return nil
	}
	taken, err = s.vendorRepo.ExistsByAadhaar(*aadhaar, excludeID)
	if err != nil {
		return wrapDB(err, "vendor")
	}
	if taken {
		return validationErr("a vendor with this aadhaar number already exists")
	}
	return nil
}
