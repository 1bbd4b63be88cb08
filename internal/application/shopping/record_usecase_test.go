package shopping_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/application/shopping"
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
	byItem map[int64]*entity.Stock
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
	h.CreatedAt = time.Now()
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

type fakeRecordRepo struct {
	nextID  int64
	records map[int64]*entity.ShoppingRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[int64]*entity.ShoppingRecord{}}
}

func (f *fakeRecordRepo) Create(r *entity.ShoppingRecord) error {
	f.nextID++
	r.ID = f.nextID
	cp := *r
	f.records[r.ID] = &cp
	return nil
}

func (f *fakeRecordRepo) GetByID(id int64) (*entity.ShoppingRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecordRepo) ListByUser(userID string) ([]*entity.ShoppingRecord, error) {
	var out []*entity.ShoppingRecord
	for _, r := range f.records {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(r *entity.ShoppingRecord) error {
	cp := *r
	f.records[r.ID] = &cp
	return nil
}

func (f *fakeRecordRepo) Delete(id int64) error {
	delete(f.records, id)
	return nil
}

type fakeListRepo struct {
	nextID  int64
	entries map[int64]*entity.ShoppingListEntry
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{entries: map[int64]*entity.ShoppingListEntry{}}
}

func (f *fakeListRepo) Create(e *entity.ShoppingListEntry) error {
	f.nextID++
	e.ID = f.nextID
	e.AddedAt = time.Now()
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeListRepo) GetByID(id int64) (*entity.ShoppingListEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeListRepo) GetByItem(userID string, itemID int64) (*entity.ShoppingListEntry, error) {
	for _, e := range f.entries {
		if e.UserID == userID && e.ItemID == itemID && !e.Checked {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeListRepo) ListByUser(userID string) ([]*entity.ShoppingListEntry, error) {
	var out []*entity.ShoppingListEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeListRepo) Update(e *entity.ShoppingListEntry) error {
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeListRepo) Delete(id int64) error {
	delete(f.entries, id)
	return nil
}

// fakeTxRunner pasa los mismos repos del test (no hay transacción real).
type fakeTxRunner struct {
	recordRepo  repository.ShoppingRecordRepository
	stockRepo   repository.StockRepository
	historyRepo repository.StockHistoryRepository
	listRepo    repository.ShoppingListRepository
}

func (f *fakeTxRunner) RunShopping(_ context.Context, fn func(
	recordRepo repository.ShoppingRecordRepository,
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
	listRepo repository.ShoppingListRepository,
) error) error {
	return fn(f.recordRepo, f.stockRepo, f.historyRepo, f.listRepo)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

type fixture struct {
	uc          *shopping.RecordUseCase
	stockRepo   *fakeStockRepo
	historyRepo *fakeHistoryRepo
	recordRepo  *fakeRecordRepo
	listRepo    *fakeListRepo
}

func buildFixture() *fixture {
	stockRepo := newFakeStockRepo()
	historyRepo := &fakeHistoryRepo{}
	recordRepo := newFakeRecordRepo()
	listRepo := newFakeListRepo()
	runner := &fakeTxRunner{
		recordRepo:  recordRepo,
		stockRepo:   stockRepo,
		historyRepo: historyRepo,
		listRepo:    listRepo,
	}
	adjuster := stockapp.NewAdjustUseCase(nil, stockRepo, historyRepo)
	return &fixture{
		uc:          shopping.NewRecordUseCase(runner, recordRepo, stockRepo, adjuster),
		stockRepo:   stockRepo,
		historyRepo: historyRepo,
		recordRepo:  recordRepo,
		listRepo:    listRepo,
	}
}

func (fx *fixture) seedStock(t *testing.T, itemID, qty int64) {
	t.Helper()
	err := fx.stockRepo.Create(&entity.Stock{
		Quantity:  dec(qty),
		Threshold: dec(2),
		Location:  "despensa",
		ItemID:    itemID,
		UserID:    "user-1",
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create — reconciliación de la compra
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ReconciliaStockYLimpiaLista(t *testing.T) {
	fx := buildFixture()
	fx.seedStock(t, 7, 3)
	require.NoError(t, fx.listRepo.Create(&entity.ShoppingListEntry{
		Quantity: dec(4), ItemID: 7, UserID: "user-1",
	}))

	record, err := fx.uc.Create(context.Background(), "user-1", dto.ShoppingRecordRequest{
		ItemID:   7,
		Quantity: dec(4),
		Price:    dec(120),
		Store:    "supermercado",
		BoughtAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotZero(t, record.ID, "la compra debe persistirse con ID")

	// Stock: 3 + 4 = 7, threshold y location intactos
	stock, err := fx.stockRepo.GetByItem("user-1", 7)
	require.NoError(t, err)
	assert.True(t, stock.Quantity.Equal(dec(7)), "el stock debe subir a 7")
	assert.True(t, stock.Threshold.Equal(dec(2)), "threshold no cambia al registrar compra")
	assert.Equal(t, "despensa", stock.Location, "location no cambia al registrar compra")

	// Historial: exactamente una entrada con reason "shopping" y memo vacío
	history, err := fx.historyRepo.ListByItem("user-1", 7)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Change.Equal(dec(4)))
	assert.Equal(t, shopping.ReasonShopping, history[0].Reason)
	assert.Empty(t, history[0].Memo)

	// Lista de compras: la entrada pendiente del item fue eliminada
	entry, err := fx.listRepo.GetByItem("user-1", 7)
	require.NoError(t, err)
	assert.Nil(t, entry, "la entrada pendiente debe eliminarse al registrar la compra")
}

func TestCreate_SinEntradaEnLista_NoFalla(t *testing.T) {
	fx := buildFixture()
	fx.seedStock(t, 7, 3)

	_, err := fx.uc.Create(context.Background(), "user-1", dto.ShoppingRecordRequest{
		ItemID: 7, Quantity: dec(1), Price: dec(10), Store: "tienda",
	})
	require.NoError(t, err, "sin entrada pendiente la compra se registra igual")
}

func TestCreate_SinStock_RetornaErrNotFound(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.Create(context.Background(), "user-1", dto.ShoppingRecordRequest{
		ItemID: 99, Quantity: dec(1), Price: dec(10), Store: "tienda",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.recordRepo.records, "no debe registrarse la compra sin stock")
	assert.Empty(t, fx.historyRepo.entries)
}

func TestCreate_SinStore_RetornaErrInvalidInput(t *testing.T) {
	fx := buildFixture()
	fx.seedStock(t, 7, 3)

	_, err := fx.uc.Create(context.Background(), "user-1", dto.ShoppingRecordRequest{
		ItemID: 7, Quantity: dec(1), Price: dec(10), Store: "  ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update — re-ajuste con acción del caller
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReajustaConAccionDelCaller(t *testing.T) {
	fx := buildFixture()
	fx.seedStock(t, 7, 10)
	require.NoError(t, fx.recordRepo.Create(&entity.ShoppingRecord{
		Quantity: dec(4), Price: dec(120), Store: "supermercado", ItemID: 7, UserID: "user-1",
	}))

	record, err := fx.uc.Update(context.Background(), "user-1", 1, dto.ShoppingRecordUpdateRequest{
		Quantity: dec(1),
		Price:    dec(30),
		Store:    "supermercado",
		Action:   "decrease",
		Reason:   "correction",
	})
	require.NoError(t, err)
	assert.True(t, record.Quantity.Equal(dec(1)))

	stock, err := fx.stockRepo.GetByItem("user-1", 7)
	require.NoError(t, err)
	assert.True(t, stock.Quantity.Equal(dec(9)), "decrease de 1 sobre 10 deja 9")

	history, err := fx.historyRepo.ListByItem("user-1", 7)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "correction", history[0].Reason)
	assert.True(t, history[0].Change.Equal(dec(-1)))
}

func TestUpdate_NoTocaLaListaDeCompras(t *testing.T) {
	fx := buildFixture()
	fx.seedStock(t, 7, 10)
	require.NoError(t, fx.recordRepo.Create(&entity.ShoppingRecord{
		Quantity: dec(4), Store: "supermercado", ItemID: 7, UserID: "user-1",
	}))
	require.NoError(t, fx.listRepo.Create(&entity.ShoppingListEntry{
		Quantity: dec(2), ItemID: 7, UserID: "user-1",
	}))

	_, err := fx.uc.Update(context.Background(), "user-1", 1, dto.ShoppingRecordUpdateRequest{
		Quantity: dec(5), Store: "supermercado", Action: "increase", Reason: "fix",
	})
	require.NoError(t, err)

	entry, err := fx.listRepo.GetByItem("user-1", 7)
	require.NoError(t, err)
	assert.NotNil(t, entry, "editar una compra no limpia la lista de compras")
}

func TestUpdate_StoreOmitido_ConservaElAnterior(t *testing.T) {
	fx := buildFixture()
	fx.seedStock(t, 7, 10)
	require.NoError(t, fx.recordRepo.Create(&entity.ShoppingRecord{
		Quantity: dec(4), Store: "supermercado", ItemID: 7, UserID: "user-1",
	}))

	record, err := fx.uc.Update(context.Background(), "user-1", 1, dto.ShoppingRecordUpdateRequest{
		Quantity: dec(5),
		Action:   "increase",
		Reason:   "fix",
	})
	require.NoError(t, err)
	assert.Equal(t, "supermercado", record.Store, "store solo sobrescribe cuando viene en el request")
	assert.True(t, record.Quantity.Equal(dec(5)))

	record, err = fx.uc.Update(context.Background(), "user-1", 1, dto.ShoppingRecordUpdateRequest{
		Store:  "mercado central",
		Action: "increase", Reason: "fix",
		Quantity: dec(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "mercado central", record.Store)
}

func TestUpdate_AccionInvalida_RetornaErrInvalidInput(t *testing.T) {
	fx := buildFixture()
	fx.seedStock(t, 7, 10)
	require.NoError(t, fx.recordRepo.Create(&entity.ShoppingRecord{
		Quantity: dec(4), Store: "supermercado", ItemID: 7, UserID: "user-1",
	}))

	_, err := fx.uc.Update(context.Background(), "user-1", 1, dto.ShoppingRecordUpdateRequest{
		Store: "supermercado", Action: "teleport",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_RecordInexistente_RetornaNil(t *testing.T) {
	fx := buildFixture()

	record, err := fx.uc.Update(context.Background(), "user-1", 99, dto.ShoppingRecordUpdateRequest{
		Store: "supermercado", Action: "increase",
	})
	require.NoError(t, err)
	assert.Nil(t, record, "record inexistente devuelve nil (404 en el handler)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_DevuelveElRecordEliminadoSinRevertirStock(t *testing.T) {
	fx := buildFixture()
	fx.seedStock(t, 7, 10)
	require.NoError(t, fx.recordRepo.Create(&entity.ShoppingRecord{
		Quantity: dec(4), Store: "supermercado", ItemID: 7, UserID: "user-1",
	}))

	record, err := fx.uc.Delete(1)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Empty(t, fx.recordRepo.records)

	stock, err := fx.stockRepo.GetByItem("user-1", 7)
	require.NoError(t, err)
	assert.True(t, stock.Quantity.Equal(dec(10)), "eliminar la compra no revierte el stock")
}
