package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("wd-100", "Widget", decimal.NewFromFloat(49.99))
	require.NoError(t, err)
	assert.Equal(t, "WD-100", product.SKU, "SKU is uppercased")
	assert.Equal(t, "pcs", product.Unit)
	assert.True(t, product.IsActive())
}

func TestNewProduct_Validation(t *testing.T) {
	_, err := NewProduct("X", "", decimal.NewFromInt(1))
	assert.Error(t, err, "empty name rejected")

	_, err = NewProduct("X", "Widget", decimal.NewFromInt(-1))
	assert.Error(t, err, "negative price rejected")
}

func TestProduct_SetPrice(t *testing.T) {
	product, err := NewProduct("X", "Widget", decimal.NewFromInt(10))
	require.NoError(t, err)

	require.NoError(t, product.SetPrice(decimal.NewFromInt(20)))
	assert.True(t, product.UnitPrice.Equal(decimal.NewFromInt(20)))

	assert.Error(t, product.SetPrice(decimal.NewFromInt(-5)))
}

func TestProduct_ArchiveRestore(t *testing.T) {
	product, err := NewProduct("X", "Widget", decimal.NewFromInt(10))
	require.NoError(t, err)

	product.Archive()
	assert.False(t, product.IsActive())
	product.Restore()
	assert.True(t, product.IsActive())
}

func TestNewService(t *testing.T) {
	service, err := NewService("Consulting", decimal.NewFromInt(150))
	require.NoError(t, err)
	assert.True(t, service.IsActive())

	_, err = NewService("", decimal.NewFromInt(1))
	assert.Error(t, err)

	_, err = NewService("Consulting", decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestService_SetRate(t *testing.T) {
	service, err := NewService("Consulting", decimal.NewFromInt(150))
	require.NoError(t, err)

	require.NoError(t, service.SetRate(decimal.NewFromInt(175)))
	assert.True(t, service.Rate.Equal(decimal.NewFromInt(175)))
	assert.Error(t, service.SetRate(decimal.NewFromInt(-1)))
}
