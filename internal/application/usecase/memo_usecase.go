package usecase

import (
	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/domain/entity"
	"github.com/stockypocky/sp-api/internal/domain/repository"
)

// MemoUseCase casos de uso CRUD para memos.
type MemoUseCase struct {
	repo repository.MemoRepository
}

// NewMemoUseCase construye el caso de uso.
func NewMemoUseCase(repo repository.MemoRepository) *MemoUseCase {
	return &MemoUseCase{repo: repo}
}

// Create crea un memo del usuario.
func (uc *MemoUseCase) Create(userID string, in dto.CreateMemoRequest) (*dto.MemoResponse, error) {
	memo := &entity.Memo{
		Title:   in.Title,
		Content: in.Content,
		Type:    in.Type,
		IsDone:  in.IsDone,
		Tags:    in.Tags,
		UserID:  userID,
	}
	if err := uc.repo.Create(memo); err != nil {
		return nil, err
	}
	return toMemoResponse(memo), nil
}

// GetByID obtiene un memo por ID; nil si no existe.
func (uc *MemoUseCase) GetByID(id int64) (*dto.MemoResponse, error) {
	memo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, nil
	}
	return toMemoResponse(memo), nil
}

// List lista los memos del usuario.
func (uc *MemoUseCase) List(userID string) ([]dto.MemoResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MemoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMemoResponse(m))
	}
	return out, nil
}

// Update sobrescribe title e is_done siempre; el resto solo si viene.
func (uc *MemoUseCase) Update(id int64, in dto.CreateMemoRequest) (*dto.MemoResponse, error) {
	memo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, nil
	}
	memo.Title = in.Title
	if in.Content != "" {
		memo.Content = in.Content
	}
	if in.Type != "" {
		memo.Type = in.Type
	}
	memo.IsDone = in.IsDone
	if len(in.Tags) > 0 {
		memo.Tags = in.Tags
	}
	if err := uc.repo.Update(memo); err != nil {
		return nil, err
	}
	return toMemoResponse(memo), nil
}

// Delete elimina un memo; devuelve el memo eliminado o nil si no existía.
func (uc *MemoUseCase) Delete(id int64) (*dto.MemoResponse, error) {
	memo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toMemoResponse(memo), nil
}

func toMemoResponse(m *entity.Memo) *dto.MemoResponse {
	if m == nil {
		return nil
	}
	return &dto.MemoResponse{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		Type:    m.Type,
		IsDone:  m.IsDone,
		Tags:    m.Tags,
		UserID:  m.UserID,
	}
}
