package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	ProductID uuid.UUID       `validate:"uuid_required"`
	Quantity  int             `validate:"required,gt=0"`
	Price     decimal.Decimal `validate:"gte=0"`
	Amount    decimal.Decimal `validate:"gt=0"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(&line{ProductID: uuid.New(), Quantity: 1, Amount: decimal.NewFromInt(5)})
	assert.Empty(t, errs)
	assert.Equal(t, "", Summary(errs))
}

func TestValidateStructCustomTags(t *testing.T) {
	errs := ValidateStruct(&line{Quantity: 0, Price: decimal.NewFromInt(-1), Amount: decimal.Zero})
	require.Len(t, errs, 4)

	tags := map[string]string{}
	for _, e := range errs {
		tags[e.FailedField] = e.Tag
	}
	assert.Equal(t, "uuid_required", tags["line.ProductID"])
	assert.Equal(t, "required", tags["line.Quantity"])
	assert.Equal(t, "gte", tags["line.Price"])
	assert.Equal(t, "gt", tags["line.Amount"])
	assert.Contains(t, Summary(errs), "field 'line.Price' failed on 'gte=0'")
}
