package usecase

import (
	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

// ShoppingListUseCase casos de uso CRUD para la lista de compras.
// La limpieza automática de entradas al registrar una compra vive en shopping.RecordUseCase.
type ShoppingListUseCase struct {
	repo repository.ShoppingListRepository
}

// NewShoppingListUseCase construye el caso de uso.
func NewShoppingListUseCase(repo repository.ShoppingListRepository) *ShoppingListUseCase {
	return &ShoppingListUseCase{repo: repo}
}

// Create agrega una entrada a la lista; siempre nace sin marcar.
func (uc *ShoppingListUseCase) Create(userID string, in dto.ShoppingListRequest) (*dto.ShoppingListResponse, error) {
	entry := &entity.ShoppingListEntry{
		Quantity: in.Quantity,
		Checked:  false,
		ItemID:   in.ItemID,
		UserID:   userID,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toShoppingListResponse(entry), nil
}

// List lista las entradas del usuario.
func (uc *ShoppingListUseCase) List(userID string) ([]dto.ShoppingListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShoppingListResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toShoppingListResponse(e))
	}
	return out, nil
}

// UpdateChecked marca o desmarca una entrada; nil si no existe.
func (uc *ShoppingListUseCase) UpdateChecked(id int64, in dto.ShoppingListCheckRequest) (*dto.ShoppingListResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	entry.Checked = in.Checked
	if err := uc.repo.Update(entry); err != nil {
		return nil, err
	}
	return toShoppingListResponse(entry), nil
}

// Delete elimina una entrada; devuelve la entrada eliminada o nil si no existía.
func (uc *ShoppingListUseCase) Delete(id int64) (*dto.ShoppingListResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toShoppingListResponse(entry), nil
}

func toShoppingListResponse(e *entity.ShoppingListEntry) *dto.ShoppingListResponse {
	if e == nil {
		return nil
	}
	return &dto.ShoppingListResponse{
		ID:       e.ID,
		Quantity: e.Quantity,
		Checked:  e.Checked,
		UserID:   e.UserID,
		ItemID:   e.ItemID,
		AddedAt:  e.AddedAt,
	}
}
