package shopping

import (
	"context"
	"strings"
	"time"

	"github.com/stockypocky/sp-api/internal/application/dto"
	stockapp "github.com/stockypocky/sp-api/internal/application/stock"
	"github.com/stockypocky/sp-api/internal/domain"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
	domainstock "github.com/stockypocky/sp-api/internal/domain/stock"
)

// ReasonShopping es el reason con el que queda marcado el historial de stock
// generado al registrar una compra.
const ReasonShopping = "shopping"

// RecordUseCase registra compras y reconcilia sus efectos: al crear una compra,
// en la misma transacción sube el stock del item (historial incluido) y saca la
// entrada pendiente de la lista de compras.
type RecordUseCase struct {
	txRunner   TxRunner
	recordRepo repository.ShoppingRecordRepository
	stockRepo  repository.StockRepository
	adjuster   *stockapp.AdjustUseCase
}

// NewRecordUseCase construye el caso de uso.
func NewRecordUseCase(
	txRunner TxRunner,
	recordRepo repository.ShoppingRecordRepository,
	stockRepo repository.StockRepository,
	adjuster *stockapp.AdjustUseCase,
) *RecordUseCase {
	return &RecordUseCase{
		txRunner:   txRunner,
		recordRepo: recordRepo,
		stockRepo:  stockRepo,
		adjuster:   adjuster,
	}
}

// Create registra una compra. En una sola transacción: inserta el registro,
// incrementa el stock del item con reason "shopping" (threshold y location se
// conservan tal cual están) y elimina la entrada pendiente de la lista de
// compras si la hay. Si el item no tiene stock devuelve ErrNotFound sin tocar nada.
func (uc *RecordUseCase) Create(ctx context.Context, userID string, in dto.ShoppingRecordRequest) (*dto.ShoppingRecordResponse, error) {
	if strings.TrimSpace(in.Store) == "" {
		return nil, domain.ErrInvalidInput
	}

	current, err := uc.stockRepo.GetByItem(userID, in.ItemID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	boughtAt := in.BoughtAt
	if boughtAt.IsZero() {
		boughtAt = time.Now()
	}
	record := &entity.ShoppingRecord{
		Quantity: in.Quantity,
		Price:    in.Price,
		Store:    in.Store,
		BoughtAt: boughtAt,
		ItemID:   in.ItemID,
		UserID:   userID,
	}

	adj := domainstock.Adjustment{
		Action:    domainstock.ActionIncrease,
		Quantity:  in.Quantity,
		Threshold: current.Threshold,
		Location:  current.Location,
		Reason:    ReasonShopping,
		Memo:      "",
	}

	err = uc.txRunner.RunShopping(ctx, func(
		recordRepo repository.ShoppingRecordRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.StockHistoryRepository,
		listRepo repository.ShoppingListRepository,
	) error {
		if err := recordRepo.Create(record); err != nil {
			return err
		}
		if _, _, err := uc.adjuster.AdjustInTx(stockRepo, historyRepo, userID, in.ItemID, adj); err != nil {
			return err
		}
		entry, err := listRepo.GetByItem(userID, in.ItemID)
		if err != nil {
			return err
		}
		if entry != nil {
			if err := listRepo.Delete(entry.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toShoppingRecordResponse(record), nil
}

// GetByID obtiene una compra; nil si no existe.
func (uc *RecordUseCase) GetByID(id int64) (*dto.ShoppingRecordResponse, error) {
	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return toShoppingRecordResponse(record), nil
}

// List lista las compras del usuario.
func (uc *RecordUseCase) List(userID string) ([]dto.ShoppingRecordResponse, error) {
	list, err := uc.recordRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShoppingRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toShoppingRecordResponse(r))
	}
	return out, nil
}

// Update edita una compra y re-ajusta el stock con la acción y reason que manda
// el caller (no asume increase). A diferencia de Create, no toca la lista de
// compras: la edición de una compra ya registrada no tiene entrada pendiente.
func (uc *RecordUseCase) Update(ctx context.Context, userID string, id int64, in dto.ShoppingRecordUpdateRequest) (*dto.ShoppingRecordResponse, error) {
	if !domainstock.ValidAction(in.Action) {
		return nil, domain.ErrInvalidInput
	}

	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	if in.ItemID != 0 {
		record.ItemID = in.ItemID
	}
	if !in.Quantity.IsZero() {
		record.Quantity = in.Quantity
	}
	if !in.Price.IsZero() {
		record.Price = in.Price
	}
	if strings.TrimSpace(in.Store) != "" {
		record.Store = in.Store
	}
	if !in.BoughtAt.IsZero() {
		record.BoughtAt = in.BoughtAt
	}

	current, err := uc.stockRepo.GetByItem(userID, record.ItemID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	adj := domainstock.Adjustment{
		Action:    in.Action,
		Quantity:  in.Quantity,
		Threshold: current.Threshold,
		Location:  current.Location,
		Reason:    in.Reason,
		Memo:      "",
	}

	err = uc.txRunner.RunShopping(ctx, func(
		recordRepo repository.ShoppingRecordRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.StockHistoryRepository,
		_ repository.ShoppingListRepository,
	) error {
		if err := recordRepo.Update(record); err != nil {
			return err
		}
		_, _, err := uc.adjuster.AdjustInTx(stockRepo, historyRepo, userID, record.ItemID, adj)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toShoppingRecordResponse(record), nil
}

// Delete elimina una compra; devuelve la compra eliminada o nil si no existía.
// No revierte el stock: el historial ya registrado queda como estaba.
func (uc *RecordUseCase) Delete(id int64) (*dto.ShoppingRecordResponse, error) {
	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	if err := uc.recordRepo.Delete(id); err != nil {
		return nil, err
	}
	return toShoppingRecordResponse(record), nil
}

func toShoppingRecordResponse(r *entity.ShoppingRecord) *dto.ShoppingRecordResponse {
	if r == nil {
		return nil
	}
	return &dto.ShoppingRecordResponse{
		ID:       r.ID,
		Quantity: r.Quantity,
		Price:    r.Price,
		Store:    r.Store,
		BoughtAt: r.BoughtAt,
		UserID:   r.UserID,
		ItemID:   r.ItemID,
	}
}
