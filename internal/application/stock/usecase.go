package stock

import (
	"context"
	"strings"

	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/domain"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
	domainstock "github.com/stockypocky/sp-api/internal/domain/stock"
)

// AdjustUseCase aplica ajustes de stock de forma transaccional: cada mutación de
// cantidad va acompañada de exactamente una entrada de historial con el delta,
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type AdjustUseCase struct {
	txRunner    TxRunner
	stockRepo   repository.StockRepository
	historyRepo repository.StockHistoryRepository
}

// NewAdjustUseCase construye el caso de uso.
func NewAdjustUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
) *AdjustUseCase {
	return &AdjustUseCase{txRunner: txRunner, stockRepo: stockRepo, historyRepo: historyRepo}
}

// ListStocks lista el stock del usuario.
func (uc *AdjustUseCase) ListStocks(userID string) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStockResponse(s))
	}
	return out, nil
}

// CreateStock crea la fila de stock de un item.
func (uc *AdjustUseCase) CreateStock(userID string, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if strings.TrimSpace(in.Location) == "" || in.ItemID == 0 {
		return nil, domain.ErrInvalidInput
	}
	stock := &entity.Stock{
		Quantity:  in.Quantity,
		Threshold: in.Threshold,
		Location:  in.Location,
		ItemID:    in.ItemID,
		UserID:    userID,
	}
	if err := uc.stockRepo.Create(stock); err != nil {
		return nil, err
	}
	out := toStockResponse(stock)
	return &out, nil
}

// GetByItem obtiene el stock actual de un item; nil si no existe.
func (uc *AdjustUseCase) GetByItem(userID string, itemID int64) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	out := toStockResponse(stock)
	return &out, nil
}

// Adjust aplica un ajuste (increase/decrease/manual) sobre el stock de un item:
// valida, inicia la transacción, bloquea la fila, recalcula con el dominio y
// persiste stock + historial. Devuelve ambos para el contrato {stock, history}.
func (uc *AdjustUseCase) Adjust(ctx context.Context, userID string, itemID int64, in dto.UpdateStockRequest) (*dto.StockWithHistoryResponse, error) {
	if !domainstock.ValidAction(in.Action) {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, domain.ErrInvalidInput
	}
	// increase/decrease exigen cantidad positiva; manual fija un nivel
	// absoluto y admite cero, pero no un objetivo negativo.
	if in.Action == domainstock.ActionManual {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	} else if in.Quantity.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validar existencia antes de abrir la transacción (404 sin tocar nada).
	existing, err := uc.stockRepo.GetByItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	adj := domainstock.Adjustment{
		Action:    in.Action,
		Quantity:  in.Quantity,
		Threshold: in.Threshold,
		Location:  in.Location,
		Reason:    in.Reason,
		Memo:      in.Memo,
	}

	var out *dto.StockWithHistoryResponse
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		historyRepo repository.StockHistoryRepository,
	) error {
		updated, history, err := uc.AdjustInTx(stockRepo, historyRepo, userID, itemID, adj)
		if err != nil {
			return err
		}
		out = &dto.StockWithHistoryResponse{
			Stock:   toStockResponse(updated),
			History: toStockHistoryResponse(history),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdjustInTx ejecuta el ajuste usando los repositorios proporcionados (misma
// transacción del caller). Lo usa el registro de compras para reconciliar stock
// dentro de su propia transacción.
func (uc *AdjustUseCase) AdjustInTx(
	stockRepo repository.StockRepository,
	historyRepo repository.StockHistoryRepository,
	userID string,
	itemID int64,
	adj domainstock.Adjustment,
) (*entity.Stock, *entity.StockHistory, error) {
	locked, err := stockRepo.GetByItemForUpdate(userID, itemID)
	if err != nil {
		return nil, nil, err
	}
	if locked == nil {
		return nil, nil, domain.ErrNotFound
	}
	updated, history, err := domainstock.Apply(*locked, adj)
	if err != nil {
		return nil, nil, err
	}
	if err := stockRepo.Update(&updated); err != nil {
		return nil, nil, err
	}
	if err := historyRepo.Create(&history); err != nil {
		return nil, nil, err
	}
	return &updated, &history, nil
}

// HistoryByItem lista el libro de cambios de un item.
func (uc *AdjustUseCase) HistoryByItem(userID string, itemID int64) ([]dto.StockHistoryResponse, error) {
	list, err := uc.historyRepo.ListByItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, toStockHistoryResponse(h))
	}
	return out, nil
}

// CreateHistory registra una entrada manual del libro sin tocar la cantidad en stock.
func (uc *AdjustUseCase) CreateHistory(userID string, itemID int64, in dto.CreateStockHistoryRequest) (*dto.StockHistoryResponse, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	history := &entity.StockHistory{
		Change: in.Change,
		Reason: in.Reason,
		Memo:   in.Memo,
		ItemID: itemID,
		UserID: userID,
	}
	if err := uc.historyRepo.Create(history); err != nil {
		return nil, err
	}
	out := toStockHistoryResponse(history)
	return &out, nil
}

func toStockResponse(s *entity.Stock) dto.StockResponse {
	return dto.StockResponse{
		ID:        s.ID,
		Quantity:  s.Quantity,
		Threshold: s.Threshold,
		Location:  s.Location,
		UserID:    s.UserID,
		ItemID:    s.ItemID,
	}
}

func toStockHistoryResponse(h *entity.StockHistory) dto.StockHistoryResponse {
	return dto.StockHistoryResponse{
		ID:        h.ID,
		Change:    h.Change,
		Reason:    h.Reason,
		Memo:      h.Memo,
		UserID:    h.UserID,
		ItemID:    h.ItemID,
		CreatedAt: h.CreatedAt,
	}
}
