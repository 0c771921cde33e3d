package service

import (
	"testing"

	"github.com/vpriyankaa/sales-admin-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeProductQuantity(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Soap", 10, "25")

	got, err := f.inventory.ChangeProductQuantity(p.ID, 3, model.OrderSale, "damaged", tester)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, 7, f.stock(t, p.ID))

	got, err = f.inventory.ChangeProductQuantity(p.ID, 5, model.OrderPurchase, "", tester)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Quantity)

	logs, err := f.inventory.GetProductLogs(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "Product created.", logs[0].Action)
	assert.Equal(t, "Quantity changed from 10 to 7.", logs[1].Action)
	assert.Equal(t, "damaged", logs[1].Comments)
	assert.Equal(t, "Quantity changed from 7 to 12.", logs[2].Action)
}

func TestChangeProductQuantityRejections(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Soap", 2, "25")

	_, err := f.inventory.ChangeProductQuantity(p.ID, 3, model.OrderSale, "", tester)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.inventory.ChangeProductQuantity(p.ID, 0, model.OrderPurchase, "", tester)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.inventory.ChangeProductQuantity(p.ID, 1, "gift", "", tester)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.inventory.ChangeProductQuantity(uuid.New(), 1, model.OrderPurchase, "", tester)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 2, f.stock(t, p.ID))
	assert.Equal(t, int64(1), f.count(t, &model.ProductLog{}))

	require.NoError(t, f.inventory.DeleteProduct(p.ID, tester))
	logs := f.count(t, &model.ProductLog{})
	_, err = f.inventory.ChangeProductQuantity(p.ID, 5, model.OrderPurchase, "", tester)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, f.stock(t, p.ID))
	assert.Equal(t, logs, f.count(t, &model.ProductLog{}))
}

func TestUpdateProductLogsDiffAndKeepsStock(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Soap", 10, "25")

	updated, err := f.inventory.UpdateProduct(p.ID, &model.Product{Name: "Soap", Price: dec("27.50"), Unit: "box", Quantity: 999}, tester)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity)
	assert.Equal(t, 10, f.stock(t, p.ID))
	assertMoney(t, "27.50", updated.Price)

	logs, err := f.inventory.GetProductLogs(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "price: changed from 25.00 to 27.50, unit: changed from pcs to box", logs[1].Comments)

	_, err = f.inventory.UpdateProduct(p.ID, &model.Product{Name: "", Price: dec("1")}, tester)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Soap", 10, "25")
	f.product(t, "Shampoo", 4, "80")

	require.NoError(t, f.inventory.DeleteProduct(p.ID, tester))

	products, err := f.inventory.GetAllProducts("")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Shampoo", products[0].Name)

	_, err = f.inventory.GetProductByID(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.inventory.UpdateProduct(p.ID, &model.Product{Name: "Soap", Price: dec("1")}, tester)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllProductsSearch(t *testing.T) {
	f := newFixture(t)
	f.product(t, "Blue Pen", 1, "5")
	f.product(t, "Red Pen", 1, "5")
	f.product(t, "100% Cotton", 1, "5")

	pens, err := f.inventory.GetAllProducts("pen")
	require.NoError(t, err)
	assert.Len(t, pens, 2)

	literal, err := f.inventory.GetAllProducts("100%")
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, "100% Cotton", literal[0].Name)
}

func TestCreateProductValidation(t *testing.T) {
	f := newFixture(t)

	err := f.inventory.CreateProduct(&model.Product{Name: "Broken", Quantity: -1}, tester)
	assert.ErrorIs(t, err, ErrValidation)

	err = f.inventory.CreateProduct(&model.Product{Name: "Broken", Price: dec("-0.01")}, tester)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, int64(0), f.count(t, &model.Product{}))
}
