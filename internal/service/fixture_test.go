package service

import (
	"testing"

	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var tester = Actor{ID: "user-1", Name: "Tester", Email: "tester@example.com"}

type fixture struct {
	db        *gorm.DB
	products  repository.ProductRepository
	orderRepo repository.OrderRepository
	logs      repository.LogRepository
	inventory InventoryService
	orders    OrderService
	customers CustomerService
	vendors   VendorService
	master    MasterService
	dashboard DashboardService
}

// newFixture wires every service against a private in-memory SQLite database.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))

	f := &fixture{
		db:        db,
		products:  repository.NewProductRepo(db),
		orderRepo: repository.NewOrderRepo(db),
		logs:      repository.NewLogRepo(db),
	}
	customerRepo := repository.NewCustomerRepo(db)
	vendorRepo := repository.NewVendorRepo(db)

	f.inventory = NewInventoryService(f.products, f.logs, db, nil)
	f.orders = NewOrderService(f.orderRepo, f.products, customerRepo, vendorRepo, f.logs, f.inventory, db, nil, "https://cdn.example.com/uploads")
	f.customers = NewCustomerService(customerRepo, f.logs, db)
	f.vendors = NewVendorService(vendorRepo, f.products, f.logs, db)
	f.master = NewMasterService(repository.NewUnitRepo(db), repository.NewPaymentMethodRepo(db))
	f.dashboard = NewDashboardService(repository.NewDashboardRepo(db), 10)
	return f
}

func (f *fixture) product(t *testing.T, name string, qty int, price string) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Quantity: qty, Price: dec(price), Unit: "pcs"}
	require.NoError(t, f.inventory.CreateProduct(p, tester))
	return p
}

func (f *fixture) customer(t *testing.T, phone string) *model.Customer {
	t.Helper()
	c := &model.Customer{Name: "Customer " + phone, Phone: phone}
	require.NoError(t, f.customers.CreateCustomer(c, tester))
	return c
}

func (f *fixture) vendor(t *testing.T, phone string, products ...uuid.UUID) *model.Vendor {
	t.Helper()
	v := &model.Vendor{Name: "Vendor " + phone, Phone: phone, Products: products}
	require.NoError(t, f.vendors.CreateVendor(v, tester))
	return v
}

func (f *fixture) stock(t *testing.T, id uuid.UUID) int {
	t.Helper()
	var p model.Product
	require.NoError(t, f.db.Unscoped().First(&p, "id = ?", id).Error)
	return p.Quantity
}

func (f *fixture) count(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(m).Count(&n).Error)
	return n
}

func (f *fixture) sale(t *testing.T, c *model.Customer, paid string, lines ...OrderItemInput) *model.Order {
	t.Helper()
	order, err := f.orders.AddOrder(&OrderInput{
		Type:       model.OrderSale,
		CustomerID: &c.ID,
		Items:      lines,
		PaidAmount: dec(paid),
	}, tester)
	require.NoError(t, err)
	return order
}

func line(id uuid.UUID, qty int) OrderItemInput {
	return OrderItemInput{ItemID: id, Quantity: qty}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, dec(want).StringFixed(2), got.StringFixed(2))
}
