package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockypocky/sp-api/internal/domain"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/stock"
)

func baseStock() entity.Stock {
	return entity.Stock{
		ID:        1,
		Quantity:  decimal.NewFromInt(10),
		Threshold: decimal.NewFromInt(20),
		Location:  "test",
		ItemID:    7,
		UserID:    "00000000-0000-0000-0000-000000000001",
	}
}

func TestApply_Increase(t *testing.T) {
	updated, history, err := stock.Apply(baseStock(), stock.Adjustment{
		Action:    stock.ActionIncrease,
		Quantity:  decimal.NewFromInt(5),
		Threshold: decimal.NewFromInt(30),
		Location:  "update",
		Reason:    "compra",
	})
	require.NoError(t, err)

	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(15)), "10 + 5 debe ser 15")
	assert.True(t, updated.Threshold.Equal(decimal.NewFromInt(30)), "threshold siempre se sobrescribe")
	assert.Equal(t, "update", updated.Location, "location siempre se sobrescribe")
	assert.True(t, history.Change.Equal(decimal.NewFromInt(5)), "el delta debe ser +5")
}

func TestApply_Decrease(t *testing.T) {
	updated, history, err := stock.Apply(baseStock(), stock.Adjustment{
		Action:    stock.ActionDecrease,
		Quantity:  decimal.NewFromInt(5),
		Threshold: decimal.NewFromInt(20),
		Location:  "test",
	})
	require.NoError(t, err)

	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, history.Change.Equal(decimal.NewFromInt(-5)), "el delta debe ser -5")
}

// decrease por debajo de cero NO se recorta: el dominio permite cantidad negativa.
func TestApply_DecreaseBelowZero_NoClamp(t *testing.T) {
	updated, history, err := stock.Apply(baseStock(), stock.Adjustment{
		Action:    stock.ActionDecrease,
		Quantity:  decimal.NewFromInt(25),
		Threshold: decimal.NewFromInt(20),
		Location:  "test",
	})
	require.NoError(t, err)

	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(-15)),
		"10 - 25 debe quedar en -15, sin recorte en cero")
	assert.True(t, history.Change.Equal(decimal.NewFromInt(-25)))
}

func TestApply_Manual(t *testing.T) {
	updated, history, err := stock.Apply(baseStock(), stock.Adjustment{
		Action:    stock.ActionManual,
		Quantity:  decimal.NewFromInt(20),
		Threshold: decimal.NewFromInt(20),
		Location:  "test",
	})
	require.NoError(t, err)

	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(20)), "manual fija el valor absoluto")
	assert.True(t, history.Change.Equal(decimal.NewFromInt(10)), "delta = 20 - 10")
}

// Repetir el mismo manual dos veces deja la cantidad igual; el segundo delta es 0.
func TestApply_ManualIdempotente(t *testing.T) {
	target := decimal.NewFromInt(20)
	adj := stock.Adjustment{
		Action:    stock.ActionManual,
		Quantity:  target,
		Threshold: decimal.NewFromInt(20),
		Location:  "test",
	}

	first, h1, err := stock.Apply(baseStock(), adj)
	require.NoError(t, err)
	second, h2, err := stock.Apply(first, adj)
	require.NoError(t, err)

	assert.True(t, first.Quantity.Equal(target))
	assert.True(t, second.Quantity.Equal(target))
	assert.True(t, h1.Change.Equal(decimal.NewFromInt(10)))
	assert.True(t, h2.Change.IsZero(), "el segundo ajuste no cambia nada")
}

func TestApply_AccionDesconocida(t *testing.T) {
	_, _, err := stock.Apply(baseStock(), stock.Adjustment{
		Action:   "transfer",
		Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_CopiaScopeDelStock(t *testing.T) {
	_, history, err := stock.Apply(baseStock(), stock.Adjustment{
		Action:    stock.ActionIncrease,
		Quantity:  decimal.NewFromInt(1),
		Threshold: decimal.NewFromInt(20),
		Location:  "test",
		Reason:    "shopping",
		Memo:      "",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), history.ItemID, "el historial hereda el item del stock")
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", history.UserID)
	assert.Equal(t, "shopping", history.Reason)
}

func TestValidAction(t *testing.T) {
	assert.True(t, stock.ValidAction("increase"))
	assert.True(t, stock.ValidAction("decrease"))
	assert.True(t, stock.ValidAction("manual"))
	assert.False(t, stock.ValidAction(""))
	assert.False(t, stock.ValidAction("set"))
}
