package service

import (
	"fmt"
	"log"

	"github.com/vpriyankaa/sales-admin-sub000/internal/audit"
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
	"github.com/vpriyankaa/sales-admin-sub000/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryService interface {
	CreateProduct(req *model.Product, actor Actor) error
	UpdateProduct(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actor Actor) error
	ChangeProductQuantity(productID uuid.UUID, quantity int, orderType model.OrderType, comments string, actor Actor) (*model.Product, error)
	AdjustStock(tx *gorm.DB, productID uuid.UUID, delta int, actor Actor) (*model.Product, error)
	GetAllProducts(search string) ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	GetProductLogs(id uuid.UUID) ([]model.ProductLog, error)
}

var productFields = []audit.Field[*model.Product]{
	{Name: "name", Get: func(p *model.Product) any { return p.Name }},
	{Name: "price", Get: func(p *model.Product) any { return p.Price }},
	{Name: "unit", Get: func(p *model.Product) any { return p.Unit }},
}

type inventoryService struct {
	productRepo repository.ProductRepository
	logRepo     repository.LogRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, lRepo repository.LogRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		logRepo:     lRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product, actor Actor) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	req.ID = uuid.Nil
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Create(tx, req); err != nil {
			return wrapDB(err, "product")
		}
		return wrapDB(s.logRepo.AppendProductLog(tx, &model.ProductLog{
			LogBase:   model.LogBase{Action: "Product created.", Comments: fmt.Sprintf("Opening quantity %d.", req.Quantity), CreatedBy: actor.ID},
			ProductID: req.ID,
		}), "product log")
	})
	if err != nil {
		log.Printf("create product %q: %v", req.Name, err)
		return err
	}

	s.publishStock("product_created", req, actor, fmt.Sprintf("%s created product '%s'", actor.Name, req.Name))
	return nil
}

// UpdateProduct edits name, price and unit. Stock only moves through the adjuster.
func (s *inventoryService) UpdateProduct(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.productRepo.FindForUpdate(tx, id)
		if err != nil {
			return wrapDB(err, "product")
		}
		if existing.DeletedAt.Valid {
			return notFoundErr("product")
		}

		next := *existing
		next.Name = req.Name
		next.Price = req.Price
		next.Unit = req.Unit
		next.UpdatedBy = actor.ID

		if err := s.productRepo.Update(tx, &next); err != nil {
			return wrapDB(err, "product")
		}
		if err := s.logRepo.AppendProductLog(tx, &model.ProductLog{
			LogBase:   model.LogBase{Action: "Product updated.", Comments: audit.Describe(existing, &next, productFields), CreatedBy: actor.ID},
			ProductID: id,
		}); err != nil {
			return wrapDB(err, "product log")
		}
		updated = &next
		return nil
	})
	if err != nil {
		log.Printf("update product %s: %v", id, err)
		return nil, err
	}

	s.publishStock("product_updated", updated, actor, fmt.Sprintf("%s updated product '%s'", actor.Name, updated.Name))
	return updated, nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID, actor Actor) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return wrapDB(err, "product")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Delete(tx, id, actor.ID); err != nil {
			return wrapDB(err, "product")
		}
		return wrapDB(s.logRepo.AppendProductLog(tx, &model.ProductLog{
			LogBase:   model.LogBase{Action: "Product deleted.", CreatedBy: actor.ID},
			ProductID: id,
		}), "product log")
	})
	if err != nil {
		log.Printf("delete product %s: %v", id, err)
		return err
	}

	s.publishStock("product_deleted", product, actor, fmt.Sprintf("%s deleted product '%s'", actor.Name, product.Name))
	return nil
}

// ChangeProductQuantity applies a manual stock movement: a sale takes quantity
// out of stock, a purchase puts it in.
func (s *inventoryService) ChangeProductQuantity(productID uuid.UUID, quantity int, orderType model.OrderType, comments string, actor Actor) (*model.Product, error) {
	if quantity <= 0 {
		return nil, validationErr("quantity must be greater than zero")
	}
	delta := quantity
	switch orderType {
	case model.OrderSale:
		delta = -quantity
	case model.OrderPurchase:
	default:
		return nil, validationErr("type must be sale or purchase")
	}

	var before int
	var product *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		current, err := s.productRepo.FindForUpdate(tx, productID)
		if err != nil {
			return wrapDB(err, "product")
		}
		if current.DeletedAt.Valid {
			return notFoundErr("product")
		}
		product, err = s.AdjustStock(tx, productID, delta, actor)
		if err != nil {
			return err
		}
		before = product.Quantity - delta
		return wrapDB(s.logRepo.AppendProductLog(tx, &model.ProductLog{
			LogBase: model.LogBase{
				Action:    fmt.Sprintf("Quantity changed from %d to %d.", before, product.Quantity),
				Comments:  comments,
				CreatedBy: actor.ID,
			},
			ProductID: productID,
		}), "product log")
	})
	if err != nil {
		log.Printf("change quantity of product %s: %v", productID, err)
		return nil, err
	}

	s.publishStock("quantity_changed", product, actor,
		fmt.Sprintf("%s changed '%s' stock from %d to %d", actor.Name, product.Name, before, product.Quantity))
	return product, nil
}

// AdjustStock applies a signed delta to a product's stock inside tx. The row
// is locked for the rest of the transaction; a negative result is rejected.
func (s *inventoryService) AdjustStock(tx *gorm.DB, productID uuid.UUID, delta int, actor Actor) (*model.Product, error) {
	product, err := s.productRepo.FindForUpdate(tx, productID)
	if err != nil {
		return nil, wrapDB(err, fmt.Sprintf("product %s", productID))
	}

	next := product.Quantity + delta
	if next < 0 {
		return nil, validationErr("insufficient stock for '%s': available %d, required %d", product.Name, product.Quantity, -delta)
	}
	if delta == 0 {
		return product, nil
	}

	if err := s.productRepo.UpdateQuantity(tx, productID, next, actor.ID); err != nil {
		return nil, wrapDB(err, "product quantity")
	}
	product.Quantity = next
	product.UpdatedBy = actor.ID
	return product, nil
}

func (s *inventoryService) GetAllProducts(search string) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(search)
	return products, wrapDB(err, "products")
}

func (s *inventoryService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, wrapDB(err, "product")
	}
	return product, nil
}

func (s *inventoryService) GetProductLogs(id uuid.UUID) ([]model.ProductLog, error) {
	if _, err := s.GetProductByID(id); err != nil {
		return nil, err
	}
	logs, err := s.logRepo.ProductLogs(id)
	return logs, wrapDB(err, "product logs")
}

func (s *inventoryService) publishStock(action string, p *model.Product, actor Actor, message string) {
	s.wsHub.Publish(ws.Event{
		Type:   "stock_update",
		Action: action,
		Data: map[string]interface{}{
			"id":       p.ID,
			"name":     p.Name,
			"quantity": p.Quantity,
			"price":    p.Price.StringFixed(2),
			"unit":     p.Unit,
			"value":    stockValue(p).StringFixed(2),
		},
		User:    actor.eventUser(),
		Message: message,
	})
}

// stockValue is quantity × price, used in event payloads.
func stockValue(p *model.Product) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
