package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockypocky/sp-api/internal/application/dto"
	stockapp "github.com/stockypocky/sp-api/internal/application/stock"
	"github.com/stockypocky/sp-api/internal/domain"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	nextID int64
	byItem map[int64]*entity.Stock // key: itemID (un solo usuario en los tests)
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{nextID: 1, byItem: map[int64]*entity.Stock{}}
}

func (f *fakeStockRepo) Create(s *entity.Stock) error {
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.byItem[s.ItemID] = &cp
	return nil
}

func (f *fakeStockRepo) GetByItem(userID string, itemID int64) (*entity.Stock, error) {
	s, ok := f.byItem[itemID]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStockRepo) GetByItemForUpdate(userID string, itemID int64) (*entity.Stock, error) {
	return f.GetByItem(userID, itemID)
}

func (f *fakeStockRepo) ListByUser(userID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range f.byItem {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) Update(s *entity.Stock) error {
	cp := *s
	f.byItem[s.ItemID] = &cp
	return nil
}

type fakeHistoryRepo struct {
	nextID  int64
	entries []entity.StockHistory
}

func (f *fakeHistoryRepo) Create(h *entity.StockHistory) error {
	f.nextID++
	h.ID = f.nextID
	f.entries = append(f.entries, *h)
	return nil
}

func (f *fakeHistoryRepo) ListByItem(userID string, itemID int64) ([]*entity.StockHistory, error) {
	var out []*entity.StockHistory
	for i := range f.entries {
		h := f.entries[i]
		if h.UserID == userID && h.ItemID == itemID {
			out = append(out, &h)
		}
	}
	return out, nil
}

// fakeTxRunner pasa los mismos repos del test (no hay transacción real).
type fakeTxRunner struct {
	stockRepo   repository.StockRepository
	historyRepo repository.StockHistoryRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	return fn(f.stockRepo, f.historyRepo)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func seedStock(t *testing.T, repo *fakeStockRepo, userID string, itemID, qty int64) {
	t.Helper()
	err := repo.Create(&entity.Stock{
		Quantity:  dec(qty),
		Threshold: dec(2),
		Location:  "despensa",
		ItemID:    itemID,
		UserID:    userID,
	})
	require.NoError(t, err)
}

func buildAdjustUC() (*stockapp.AdjustUseCase, *fakeStockRepo, *fakeHistoryRepo) {
	stockRepo := newFakeStockRepo()
	historyRepo := &fakeHistoryRepo{}
	uc := stockapp.NewAdjustUseCase(&fakeTxRunner{stockRepo: stockRepo, historyRepo: historyRepo}, stockRepo, historyRepo)
	return uc, stockRepo, historyRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_IncreaseSumaYRegistraHistorial(t *testing.T) {
	uc, stockRepo, historyRepo := buildAdjustUC()
	seedStock(t, stockRepo, "user-1", 7, 10)

	out, err := uc.Adjust(context.Background(), "user-1", 7, dto.UpdateStockRequest{
		Action:    "increase",
		Quantity:  dec(5),
		Threshold: dec(3),
		Location:  "alacena",
		Reason:    "restock",
		Memo:      "compra mensual",
	})
	require.NoError(t, err)

	assert.True(t, out.Stock.Quantity.Equal(dec(15)), "10 + 5 debe dar 15")
	assert.True(t, out.Stock.Threshold.Equal(dec(3)), "threshold siempre sobrescribe")
	assert.Equal(t, "alacena", out.Stock.Location, "location siempre sobrescribe")
	assert.True(t, out.History.Change.Equal(dec(5)), "el delta del historial debe ser +5")
	assert.Equal(t, "restock", out.History.Reason)
	assert.Equal(t, "compra mensual", out.History.Memo)
	assert.Len(t, historyRepo.entries, 1, "debe persistirse exactamente una entrada de historial")
}

func TestAdjust_ManualFijaCantidadAbsoluta(t *testing.T) {
	uc, stockRepo, _ := buildAdjustUC()
	seedStock(t, stockRepo, "user-1", 7, 10)

	out, err := uc.Adjust(context.Background(), "user-1", 7, dto.UpdateStockRequest{
		Action:   "manual",
		Quantity: dec(4),
		Location: "despensa",
		Reason:   "inventario",
	})
	require.NoError(t, err)

	assert.True(t, out.Stock.Quantity.Equal(dec(4)), "manual fija la cantidad en 4")
	assert.True(t, out.History.Change.Equal(dec(-6)), "el delta debe ser 4 - 10 = -6")
}

func TestAdjust_DecreaseNoRecortaEnCero(t *testing.T) {
	uc, stockRepo, _ := buildAdjustUC()
	seedStock(t, stockRepo, "user-1", 7, 3)

	out, err := uc.Adjust(context.Background(), "user-1", 7, dto.UpdateStockRequest{
		Action:   "decrease",
		Quantity: dec(5),
		Location: "despensa",
		Reason:   "consumo",
	})
	require.NoError(t, err)

	assert.True(t, out.Stock.Quantity.Equal(dec(-2)),
		"decrease por debajo de cero deja la cantidad negativa, sin recorte")
}

func TestAdjust_AccionDesconocida_RetornaErrInvalidInput(t *testing.T) {
	uc, stockRepo, historyRepo := buildAdjustUC()
	seedStock(t, stockRepo, "user-1", 7, 10)

	_, err := uc.Adjust(context.Background(), "user-1", 7, dto.UpdateStockRequest{
		Action:   "explode",
		Quantity: dec(1),
		Location: "despensa",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, historyRepo.entries, "no debe escribirse historial en una acción inválida")
}

func TestAdjust_CantidadNoPositiva_RetornaErrInvalidInput(t *testing.T) {
	uc, stockRepo, historyRepo := buildAdjustUC()
	seedStock(t, stockRepo, "user-1", 7, 10)

	for _, action := range []string{"increase", "decrease"} {
		for _, qty := range []int64{0, -3} {
			_, err := uc.Adjust(context.Background(), "user-1", 7, dto.UpdateStockRequest{
				Action:   action,
				Quantity: dec(qty),
				Location: "despensa",
				Reason:   "ajuste",
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput,
				"%s con cantidad %d debe rechazarse antes de tocar nada", action, qty)
		}
	}
	assert.Empty(t, historyRepo.entries, "una cantidad rechazada no escribe historial")

	current, err := stockRepo.GetByItem("user-1", 7)
	require.NoError(t, err)
	assert.True(t, current.Quantity.Equal(dec(10)), "el stock queda intacto")
}

func TestAdjust_ManualAdmiteCeroPeroNoNegativo(t *testing.T) {
	uc, stockRepo, _ := buildAdjustUC()
	seedStock(t, stockRepo, "user-1", 7, 10)

	out, err := uc.Adjust(context.Background(), "user-1", 7, dto.UpdateStockRequest{
		Action:   "manual",
		Quantity: dec(0),
		Location: "despensa",
		Reason:   "agotado",
	})
	require.NoError(t, err)
	assert.True(t, out.Stock.Quantity.Equal(dec(0)), "manual puede fijar el stock en cero")
	assert.True(t, out.History.Change.Equal(dec(-10)))

	_, err = uc.Adjust(context.Background(), "user-1", 7, dto.UpdateStockRequest{
		Action:   "manual",
		Quantity: dec(-1),
		Location: "despensa",
		Reason:   "agotado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un objetivo negativo se rechaza")
}

func TestAdjust_StockInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _ := buildAdjustUC()

	_, err := uc.Adjust(context.Background(), "user-1", 99, dto.UpdateStockRequest{
		Action:   "increase",
		Quantity: dec(1),
		Location: "despensa",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateHistory_SinReason_RetornaErrInvalidInput(t *testing.T) {
	uc, _, historyRepo := buildAdjustUC()

	_, err := uc.CreateHistory("user-1", 7, dto.CreateStockHistoryRequest{Change: dec(2)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, historyRepo.entries)
}

func TestCreateHistory_NoTocaCantidadEnStock(t *testing.T) {
	uc, stockRepo, historyRepo := buildAdjustUC()
	seedStock(t, stockRepo, "user-1", 7, 10)

	entry, err := uc.CreateHistory("user-1", 7, dto.CreateStockHistoryRequest{
		Change: dec(-1),
		Reason: "merma",
	})
	require.NoError(t, err)
	assert.True(t, entry.Change.Equal(dec(-1)))
	assert.Len(t, historyRepo.entries, 1)

	current, err := stockRepo.GetByItem("user-1", 7)
	require.NoError(t, err)
	assert.True(t, current.Quantity.Equal(dec(10)),
		"la entrada manual no modifica la cantidad en stock")
}
