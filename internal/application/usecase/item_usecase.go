package usecase

import (
	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para items. El stock del item se maneja aparte.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un item del usuario.
func (uc *ItemUseCase) Create(userID string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item := &entity.Item{
		Name:            in.Name,
		Brand:           in.Brand,
		Unit:            in.Unit,
		ImageURL:        in.ImageURL,
		DefaultQuantity: in.DefaultQuantity,
		Notes:           in.Notes,
		IsFavorite:      in.IsFavorite,
		UserID:          userID,
		CategoryID:      in.CategoryID,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un item por ID; nil si no existe.
func (uc *ItemUseCase) GetByID(id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List lista los items del usuario, filtrando por categoría y/o favorito si aplica.
func (uc *ItemUseCase) List(userID string, categoryID *int64, isFavorite *bool) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(userID, categoryID, isFavorite)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Update sobrescribe solo los campos enviados (mismo merge parcial del resto de la API).
func (uc *ItemUseCase) Update(id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Brand != "" {
		item.Brand = in.Brand
	}
	if in.Unit != "" {
		item.Unit = in.Unit
	}
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}
	if !in.DefaultQuantity.IsZero() {
		item.DefaultQuantity = in.DefaultQuantity
	}
	if in.Notes != "" {
		item.Notes = in.Notes
	}
	item.IsFavorite = in.IsFavorite
	if in.CategoryID != 0 {
		item.CategoryID = in.CategoryID
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un item (stock e historial caen en cascada en la DB).
func (uc *ItemUseCase) Delete(id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:              i.ID,
		Name:            i.Name,
		Brand:           i.Brand,
		Unit:            i.Unit,
		ImageURL:        i.ImageURL,
		DefaultQuantity: i.DefaultQuantity,
		Notes:           i.Notes,
		IsFavorite:      i.IsFavorite,
		UserID:          i.UserID,
		CategoryID:      i.CategoryID,
	}
}
