package service

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/vpriyankaa/sales-admin-sub000/internal/audit"
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
	"github.com/vpriyankaa/sales-admin-sub000/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItemInput is one submitted order line. Price falls back to the
// product's current price (or the line's previous price on edit) when omitted.
type OrderItemInput struct {
	ItemID   uuid.UUID        `json:"item_id" validate:"uuid_required"`
	Quantity int              `json:"quantity" validate:"gt=0"`
	Price    *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
}

type OrderInput struct {
	Type          model.OrderType    `json:"type" validate:"required,oneof=sale purchase"`
	CustomerID    *uuid.UUID         `json:"customer_id"`
	VendorID      *uuid.UUID         `json:"vendor_id"`
	Items         []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
	DiscountType  model.DiscountType `json:"discount_type" validate:"omitempty,oneof=flat percentage"`
	DiscountValue decimal.Decimal    `json:"discount_value" validate:"gte=0"`
	PaidAmount    decimal.Decimal    `json:"paid_amount" validate:"gte=0"`
	PaymentMethod string             `json:"payment_method"`
	Documents     string             `json:"documents"`
	Remarks       string             `json:"remarks"`
	Date          *time.Time         `json:"date"`
}

// OrderUpdateInput replaces an order's lines, party, discount and remarks.
// The order type and paid amount are kept.
type OrderUpdateInput struct {
	CustomerID    *uuid.UUID         `json:"customer_id"`
	VendorID      *uuid.UUID         `json:"vendor_id"`
	Items         []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
	DiscountType  model.DiscountType `json:"discount_type" validate:"omitempty,oneof=flat percentage"`
	DiscountValue decimal.Decimal    `json:"discount_value" validate:"gte=0"`
	Remarks       string             `json:"remarks"`
	Date          *time.Time         `json:"date"`
}

type OrderService interface {
	AddOrder(in *OrderInput, actor Actor) (*model.Order, error)
	UpdateOrder(orderID uuid.UUID, in *OrderUpdateInput, actor Actor) (*model.Order, error)
	ChangeOrderStatus(orderID uuid.UUID, status model.OrderStatus, comments string, actor Actor) (*model.Order, error)
	ChangeOrderPaymentStatus(orderID uuid.UUID, status model.PaymentStatus, actor Actor) (*model.Order, error)
	ChangeOrderPayment(orderID uuid.UUID, in *PaymentInput, actor Actor) (*model.Order, error)
	GetOrderByID(id uuid.UUID) (*model.Order, error)
	ListOrders(filter repository.OrderFilter) ([]model.Order, error)
	GetOrderLogs(id uuid.UUID) ([]model.OrderLog, error)
	GetPaymentLogs(id uuid.UUID) ([]model.PaymentLog, error)
}

var orderFields = []audit.Field[*model.Order]{
	{Name: "customer", Get: func(o *model.Order) any { return optionalID(o.CustomerID) }},
	{Name: "vendor", Get: func(o *model.Order) any { return optionalID(o.VendorID) }},
	{Name: "items", Get: func(o *model.Order) any { return describeItems(o.Items) }},
	{Name: "discount type", Get: func(o *model.Order) any { return string(o.DiscountType) }},
	{Name: "discount value", Get: func(o *model.Order) any { return o.DiscountValue }},
	{Name: "total price", Get: func(o *model.Order) any { return o.TotalPrice }},
	{Name: "total payable", Get: func(o *model.Order) any { return o.TotalPayable }},
	{Name: "remaining amount", Get: func(o *model.Order) any { return o.RemainingAmount }},
	{Name: "payment status", Get: func(o *model.Order) any { return string(o.PaymentStatus) }},
	{Name: "remarks", Get: func(o *model.Order) any { return o.Remarks }},
	{Name: "date", Get: func(o *model.Order) any { return o.Date.Format("2006-01-02") }},
}

type orderService struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	customerRepo   repository.CustomerRepository
	vendorRepo     repository.VendorRepository
	logRepo        repository.LogRepository
	inventory      InventoryService
	db             *gorm.DB
	wsHub          *ws.Hub
	storageBaseURL string
}

func NewOrderService(
	oRepo repository.OrderRepository,
	pRepo repository.ProductRepository,
	cRepo repository.CustomerRepository,
	vRepo repository.VendorRepository,
	lRepo repository.LogRepository,
	inventory InventoryService,
	db *gorm.DB,
	hub *ws.Hub,
	storageBaseURL string,
) OrderService {
	return &orderService{
		orderRepo:      oRepo,
		productRepo:    pRepo,
		customerRepo:   cRepo,
		vendorRepo:     vRepo,
		logRepo:        lRepo,
		inventory:      inventory,
		db:             db,
		wsHub:          hub,
		storageBaseURL: storageBaseURL,
	}
}

// AddOrder validates and persists a new order. Every line's stock effect is
// applied in the same transaction as the insert, so a failed insert leaves
// stock untouched.
func (s *orderService) AddOrder(in *OrderInput, actor Actor) (*model.Order, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	order := &model.Order{
		Type:          in.Type,
		DiscountType:  discountTypeOrFlat(in.DiscountType),
		DiscountValue: in.DiscountValue,
		PaidAmount:    in.PaidAmount,
		Status:        model.StatusCreated,
		Remarks:       strings.TrimSpace(in.Remarks),
		Date:          orderDate(in.Date),
	}
	order.CreatedBy = actor.ID
	order.UpdatedBy = actor.ID

	if err := s.assignParty(order, in.CustomerID, in.VendorID); err != nil {
		return nil, err
	}

	products, err := s.loadProducts(order, in.Items, nil)
	if err != nil {
		return nil, err
	}
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		p := products[line.ItemID]
		items = append(items, model.OrderItem{
			ItemID:   p.ID,
			Name:     p.Name,
			Quantity: line.Quantity,
			Price:    priceOr(line.Price, p.Price),
			Unit:     p.Unit,
		})
	}
	order.Items = datatypes.JSONSlice[model.OrderItem](items)

	if err := checkTotals(order); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		sign := order.StockSign()
		for _, it := range sortedByID(order.Items) {
			if _, err := s.inventory.AdjustStock(tx, it.ItemID, sign*it.Quantity, actor); err != nil {
				return err
			}
		}

		if err := s.orderRepo.Create(tx, order); err != nil {
			return wrapDB(err, "order")
		}

		if err := s.logRepo.AppendOrderLog(tx, &model.OrderLog{
			LogBase: model.LogBase{
				Action:    "Order created.",
				Comments:  fmt.Sprintf("%d item(s), total payable %s.", len(order.Items), order.TotalPayable.StringFixed(2)),
				CreatedBy: actor.ID,
			},
			OrderID:   order.ID,
			Documents: in.Documents,
		}); err != nil {
			return wrapDB(err, "order log")
		}

		if order.PaidAmount.IsPositive() {
			return wrapDB(s.logRepo.AppendPaymentLog(tx, &model.PaymentLog{
				LogBase:       model.LogBase{Action: paymentAction(order.PaidAmount, order), CreatedBy: actor.ID},
				OrderID:       order.ID,
				Amount:        order.PaidAmount,
				PaymentMethod: in.PaymentMethod,
				Documents:     in.Documents,
			}), "payment log")
		}
		return nil
	})
	if err != nil {
		log.Printf("add %s order: %v", in.Type, err)
		return nil, err
	}

	s.publishOrder("order_created", order, actor,
		fmt.Sprintf("%s created a %s order of %s", actor.Name, order.Type, order.TotalPayable.StringFixed(2)))
	return order, nil
}

// UpdateOrder replaces the lines of an active order and applies only the
// stock difference between the old and new quantities. Lines that were
// removed get their full stock effect reverted.
func (s *orderService) UpdateOrder(orderID uuid.UUID, in *OrderUpdateInput, actor Actor) (*model.Order, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	current, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, wrapDB(err, "order")
	}
	if !current.IsActive() {
		return nil, validationErr("a %s order cannot be edited", current.Status)
	}

	probe := &model.Order{Type: current.Type}
	if err := s.assignParty(probe, in.CustomerID, in.VendorID); err != nil {
		return nil, err
	}
	products, err := s.loadProducts(probe, in.Items, current.QuantityByItem())
	if err != nil {
		return nil, err
	}

	var updated *model.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindForUpdate(tx, orderID)
		if err != nil {
			return wrapDB(err, "order")
		}
		if !order.IsActive() {
			return validationErr("a %s order cannot be edited", order.Status)
		}
		before := *order
		before.Items = slices.Clone(order.Items)

		previous := make(map[uuid.UUID]model.OrderItem, len(order.Items))
		for _, it := range order.Items {
			previous[it.ItemID] = it
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			if old, ok := previous[line.ItemID]; ok {
				old.Quantity = line.Quantity
				old.Price = priceOr(line.Price, old.Price)
				items = append(items, old)
				continue
			}
			p, ok := products[line.ItemID]
			if !ok {
				return notFoundErr(fmt.Sprintf("product %s", line.ItemID))
			}
			items = append(items, model.OrderItem{
				ItemID:   p.ID,
				Name:     p.Name,
				Quantity: line.Quantity,
				Price:    priceOr(line.Price, p.Price),
				Unit:     p.Unit,
			})
		}

		order.CustomerID, order.Customer = probe.CustomerID, probe.Customer
		order.VendorID, order.Vendor = probe.VendorID, probe.Vendor
		order.Items = datatypes.JSONSlice[model.OrderItem](items)
		order.DiscountType = discountTypeOrFlat(in.DiscountType)
		order.DiscountValue = in.DiscountValue
		order.Remarks = strings.TrimSpace(in.Remarks)
		if in.Date != nil {
			order.Date = *in.Date
		}
		order.UpdatedBy = actor.ID

		if err := checkTotals(order); err != nil {
			return err
		}

		if err := s.applyItemDeltas(tx, order, before.QuantityByItem(), before.Items, actor); err != nil {
			return err
		}

		if err := s.orderRepo.Save(tx, order); err != nil {
			return wrapDB(err, "order")
		}

		if err := s.logRepo.AppendOrderLog(tx, &model.OrderLog{
			LogBase: model.LogBase{
				Action:    "Order updated.",
				Comments:  audit.Describe(&before, order, orderFields),
				CreatedBy: actor.ID,
			},
			OrderID: order.ID,
		}); err != nil {
			return wrapDB(err, "order log")
		}

		updated = order
		return nil
	})
	if err != nil {
		log.Printf("update order %s: %v", orderID, err)
		return nil, err
	}

	s.publishOrder("order_updated", updated, actor,
		fmt.Sprintf("%s updated a %s order", actor.Name, updated.Type))
	return updated, nil
}

// applyItemDeltas moves stock by the difference between the old quantities
// and the order's new lines, in the order's direction.
func (s *orderService) applyItemDeltas(tx *gorm.DB, order *model.Order, oldQty map[uuid.UUID]int, oldItems []model.OrderItem, actor Actor) error {
	sign := order.StockSign()
	for _, it := range sortedByID(order.Items) {
		delta := it.Quantity - oldQty[it.ItemID]
		delete(oldQty, it.ItemID)
		if delta == 0 {
			continue
		}
		if _, err := s.inventory.AdjustStock(tx, it.ItemID, sign*delta, actor); err != nil {
			return err
		}
	}

	for _, it := range oldItems {
		qty, removed := oldQty[it.ItemID]
		if !removed {
			continue
		}
		delete(oldQty, it.ItemID)
		if _, err := s.inventory.AdjustStock(tx, it.ItemID, -sign*qty, actor); err != nil {
			return err
		}
	}
	return nil
}

func (s *orderService) GetOrderByID(id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, wrapDB(err, "order")
	}
	return order, nil
}

func (s *orderService) ListOrders(filter repository.OrderFilter) ([]model.Order, error) {
	if filter.Type != "" && filter.Type != model.OrderSale && filter.Type != model.OrderPurchase {
		return nil, validationErr("unknown order type '%s'", filter.Type)
	}
	if filter.Status != "" && !model.ValidOrderStatus(filter.Status) {
		return nil, validationErr("unknown order status '%s'", filter.Status)
	}
	if filter.PaymentStatus != "" && !model.ValidPaymentStatus(filter.PaymentStatus) {
		return nil, validationErr("unknown payment status '%s'", filter.PaymentStatus)
	}
	orders, err := s.orderRepo.FindAll(filter)
	return orders, wrapDB(err, "orders")
}

func (s *orderService) GetOrderLogs(id uuid.UUID) ([]model.OrderLog, error) {
	if _, err := s.GetOrderByID(id); err != nil {
		return nil, err
	}
	logs, err := s.logRepo.OrderLogs(id)
	return logs, wrapDB(err, "order logs")
}

func (s *orderService) GetPaymentLogs(id uuid.UUID) ([]model.PaymentLog, error) {
	if _, err := s.GetOrderByID(id); err != nil {
		return nil, err
	}
	logs, err := s.logRepo.PaymentLogs(id)
	if err != nil {
		return nil, wrapDB(err, "payment logs")
	}
	for i := range logs {
		logs[i].DocumentURL = model.DocumentURL(s.storageBaseURL, logs[i].Documents)
	}
	return logs, nil
}

// assignParty sets the customer or vendor for the order's type and checks it exists.
func (s *orderService) assignParty(order *model.Order, customerID, vendorID *uuid.UUID) error {
	switch order.Type {
	case model.OrderSale:
		if customerID == nil || *customerID == uuid.Nil {
			return validationErr("a sale order needs a customer")
		}
		if vendorID != nil && *vendorID != uuid.Nil {
			return validationErr("a sale order cannot have a vendor")
		}
		customer, err := s.customerRepo.FindByID(*customerID)
		if err != nil {
			return wrapDB(err, "customer")
		}
		order.CustomerID, order.VendorID = &customer.ID, nil
		order.Customer = customer
	case model.OrderPurchase:
		if vendorID == nil || *vendorID == uuid.Nil {
			return validationErr("a purchase order needs a vendor")
		}
		if customerID != nil && *customerID != uuid.Nil {
			return validationErr("a purchase order cannot have a customer")
		}
		vendor, err := s.vendorRepo.FindByID(*vendorID)
		if err != nil {
			return wrapDB(err, "vendor")
		}
		order.VendorID, order.CustomerID = &vendor.ID, nil
		order.Vendor = vendor
	default:
		return validationErr("type must be sale or purchase")
	}
	return nil
}

// loadProducts rejects duplicate lines and returns the catalogue products for
// every line not already on the order. Purchases are limited to the products
// the vendor supplies when the vendor lists any.
func (s *orderService) loadProducts(order *model.Order, lines []OrderItemInput, existing map[uuid.UUID]int) (map[uuid.UUID]*model.Product, error) {
	seen := make(map[uuid.UUID]bool, len(lines))
	var ids []uuid.UUID
	for _, line := range lines {
		if seen[line.ItemID] {
			return nil, validationErr("product %s appears more than once", line.ItemID)
		}
		seen[line.ItemID] = true
		if _, ok := existing[line.ItemID]; !ok {
			ids = append(ids, line.ItemID)
		}
	}

	products := make(map[uuid.UUID]*model.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}
	found, err := s.productRepo.FindByIDs(ids)
	if err != nil {
		return nil, wrapDB(err, "products")
	}
	for i := range found {
		products[found[i].ID] = &found[i]
	}
	for _, id := range ids {
		p, ok := products[id]
		if !ok {
			return nil, notFoundErr(fmt.Sprintf("product %s", id))
		}
		if order.Vendor != nil && len(order.Vendor.Products) > 0 && !order.Vendor.Supplies(id) {
			return nil, validationErr("vendor '%s' does not supply '%s'", order.Vendor.Name, p.Name)
		}
	}
	return products, nil
}

// checkTotals recomputes the order amounts and enforces the discount and
// payment bounds.
func checkTotals(order *model.Order) error {
	order.Recalculate()
	if order.DiscountType == model.DiscountPercentage && order.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return validationErr("percentage discount cannot exceed 100")
	}
	if order.DiscountAmount().GreaterThan(order.TotalPrice) {
		return validationErr("discount %s exceeds total price %s", order.DiscountAmount().StringFixed(2), order.TotalPrice.StringFixed(2))
	}
	if order.PaidAmount.GreaterThan(order.TotalPayable) {
		return validationErr("paid amount %s exceeds total payable %s", order.PaidAmount.StringFixed(2), order.TotalPayable.StringFixed(2))
	}
	return nil
}

func (s *orderService) publishOrder(action string, o *model.Order, actor Actor, message string) {
	s.wsHub.Publish(ws.Event{
		Type:   "order_update",
		Action: action,
		Data: map[string]interface{}{
			"id":               o.ID,
			"type":             o.Type,
			"status":           o.Status,
			"payment_status":   o.PaymentStatus,
			"total_payable":    o.TotalPayable.StringFixed(2),
			"remaining_amount": o.RemainingAmount.StringFixed(2),
		},
		User:    actor.eventUser(),
		Message: message,
	})
}

// sortedByID returns a copy of items ordered by product id, so concurrent
// orders lock product rows in the same order.
func sortedByID(items []model.OrderItem) []model.OrderItem {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b model.OrderItem) int {
		return strings.Compare(a.ItemID.String(), b.ItemID.String())
	})
	return sorted
}

func paymentAction(amount decimal.Decimal, o *model.Order) string {
	return fmt.Sprintf("Payment of %s received. Paid: %s, Remaining: %s.",
		amount.StringFixed(2), o.PaidAmount.StringFixed(2), o.RemainingAmount.StringFixed(2))
}

func priceOr(price *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if price != nil {
		return *price
	}
	return fallback
}

func discountTypeOrFlat(t model.DiscountType) model.DiscountType {
	if t == "" {
		return model.DiscountFlat
	}
	return t
}

func orderDate(d *time.Time) time.Time {
	if d == nil || d.IsZero() {
		return time.Now()
	}
	return *d
}

func optionalID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func describeItems(items []model.OrderItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s x%d @ %s", it.Name, it.Quantity, it.Price.StringFixed(2))
	}
	return "[" + strings.Join(parts, "; ") + "]"
}
