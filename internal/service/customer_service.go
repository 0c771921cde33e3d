package service

import (
	"log"
	"strings"

	"github.com/vpriyankaa/sales-admin-sub000/internal/audit"
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerService interface {
	CreateCustomer(req *model.Customer, actor Actor) error
	UpdateCustomer(id uuid.UUID, req *model.Customer, actor Actor) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID, actor Actor) error
	GetCustomers(search string) ([]model.Customer, error)
	GetCustomerByID(id uuid.UUID) (*model.Customer, error)
	GetCustomerLogs(id uuid.UUID) ([]model.CustomerLog, error)
}

var customerFields = []audit.Field[*model.Customer]{
	{Name: "name", Get: func(c *model.Customer) any { return c.Name }},
	{Name: "phone", Get: func(c *model.Customer) any { return c.Phone }},
	{Name: "aadhaar", Get: func(c *model.Customer) any { return c.Aadhaar }},
	{Name: "address", Get: func(c *model.Customer) any { return c.Address }},
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logRepo      repository.LogRepository
	db           *gorm.DB
}

func NewCustomerService(cRepo repository.CustomerRepository, lRepo repository.LogRepository, db *gorm.DB) CustomerService {
	return &customerService{customerRepo: cRepo, logRepo: lRepo, db: db}
}

func (s *customerService) CreateCustomer(req *model.Customer, actor Actor) error {
	normalizeParty(&req.Name, &req.Phone, &req.Aadhaar, &req.Address)
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := s.checkUnique(req.Phone, req.Aadhaar, uuid.Nil); err != nil {
		return err
	}

	req.ID = uuid.Nil
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.customerRepo.Create(tx, req); err != nil {
			return wrapDB(err, "customer")
		}
		return wrapDB(s.logRepo.AppendCustomerLog(tx, &model.CustomerLog{
			LogBase:    model.LogBase{Action: "Customer created.", CreatedBy: actor.ID},
			CustomerID: req.ID,
		}), "customer log")
	})
	if err != nil {
		log.Printf("create customer %q: %v", req.Name, err)
	}
	return err
}

func (s *customerService) UpdateCustomer(id uuid.UUID, req *model.Customer, actor Actor) (*model.Customer, error) {
	normalizeParty(&req.Name, &req.Phone, &req.Aadhaar, &req.Address)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	existing, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, wrapDB(err, "customer")
	}
	if err := s.checkUnique(req.Phone, req.Aadhaar, id); err != nil {
		return nil, err
	}

	next := *existing
	next.Name = req.Name
	next.Phone = req.Phone
	next.Aadhaar = req.Aadhaar
	next.Address = req.Address
	next.UpdatedBy = actor.ID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.customerRepo.Update(tx, &next); err != nil {
			return wrapDB(err, "customer")
		}
		return wrapDB(s.logRepo.AppendCustomerLog(tx, &model.CustomerLog{
			LogBase:    model.LogBase{Action: "Customer updated.", Comments: audit.Describe(existing, &next, customerFields), CreatedBy: actor.ID},
			CustomerID: id,
		}), "customer log")
	})
	if err != nil {
		log.Printf("update customer %s: %v", id, err)
		return nil, err
	}
	return &next, nil
}

func (s *customerService) DeleteCustomer(id uuid.UUID, actor Actor) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		return wrapDB(err, "customer")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.customerRepo.Delete(tx, id, actor.ID); err != nil {
			return wrapDB(err, "customer")
		}
		return wrapDB(s.logRepo.AppendCustomerLog(tx, &model.CustomerLog{
			LogBase:    model.LogBase{Action: "Customer deleted.", CreatedBy: actor.ID},
			CustomerID: id,
		}), "customer log")
	})
	if err != nil {
		log.Printf("delete customer %s: %v", id, err)
	}
	return err
}

func (s *customerService) GetCustomers(search string) ([]model.Customer, error) {
	customers, err := s.customerRepo.FindAll(search)
	return customers, wrapDB(err, "customers")
}

func (s *customerService) GetCustomerByID(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, wrapDB(err, "customer")
	}
	return customer, nil
}

func (s *customerService) GetCustomerLogs(id uuid.UUID) ([]model.CustomerLog, error) {
	if _, err := s.GetCustomerByID(id); err != nil {
		return nil, err
	}
	logs, err := s.logRepo.CustomerLogs(id)
	return logs, wrapDB(err, "customer logs")
}

func (s *customerService) checkUnique(phone string, aadhaar *string, excludeID uuid.UUID) error {
	taken, err := s.customerRepo.ExistsByPhone(phone, excludeID)
	if err != nil {
		return wrapDB(err, "customer")
	}
	if taken {
		return validationErr("a customer with phone %s already exists", phone)
	}
	if aadhaar == nil {
		return nil
	}
	taken, err = s.customerRepo.ExistsByAadhaar(*aadhaar, excludeID)
	if err != nil {
		return wrapDB(err, "customer")
	}
	if taken {
		return validationErr("a customer with this aadhaar number already exists")
	}
	return nil
}

// normalizeParty trims the contact fields and stores a blank aadhaar as NULL
// so the unique index only covers real numbers.
func normalizeParty(name, phone *string, aadhaar **string, address *string) {
	*name = strings.TrimSpace(*name)
	*phone = strings.TrimSpace(*phone)
	*address = strings.TrimSpace(*address)
	if *aadhaar != nil {
		v := strings.ReplaceAll(strings.TrimSpace(**aadhaar), " ", "")
		if v == "" {
			*aadhaar = nil
		} else {
			*aadhaar = &v
		}
	}
}
