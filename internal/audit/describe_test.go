package audit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type contact struct {
	Name    string
	Phone   string
	Aadhaar *string
	Credit  decimal.Decimal
}

var contactFields = []Field[contact]{
	{Name: "name", Get: func(c contact) any { return c.Name }},
	{Name: "phone", Get: func(c contact) any { return c.Phone }},
	{Name: "aadhaar", Get: func(c contact) any { return c.Aadhaar }},
	{Name: "credit", Get: func(c contact) any { return c.Credit }},
}

func TestDescribeNoChanges(t *testing.T) {
	c := contact{Name: "Ravi", Phone: "9000000001", Credit: decimal.NewFromInt(10)}
	assert.Equal(t, NoChanges, Describe(c, c, contactFields))
}

func TestDescribeJoinsChangedFields(t *testing.T) {
	id := "123412341234"
	old := contact{Name: "Ravi", Phone: "9000000001", Credit: decimal.NewFromInt(10)}
	updated := contact{Name: "Ravi Kumar", Phone: "9000000001", Aadhaar: &id, Credit: decimal.RequireFromString("10.00")}

	got := Describe(old, updated, contactFields)
	assert.Equal(t, "name: changed from Ravi to Ravi Kumar, aadhaar: changed from none to 123412341234", got)
}

func TestDescribeDecimalScale(t *testing.T) {
	old := contact{Credit: decimal.RequireFromString("5")}
	updated := contact{Credit: decimal.RequireFromString("7.5")}
	assert.Equal(t, "credit: changed from 5.00 to 7.50", Describe(old, updated, contactFields))
}
