package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// ILPURepository abstracts DynamoDB persistence for LPU.
//
// The quotation service must be able to:
//   - create an LPU with a caller-supplied id (ErrAlreadyExists when taken)
//   - read it by id or by the supplier quote token
//   - replace the whole document only when the stored version still matches
//     (ErrVersionConflict otherwise); the returned LPU carries the bumped version
type ILPURepository interface {
	Create(ctx context.Context, l entities.LPU) (entities.LPU, error)
	GetByID(ctx context.Context, id string) (entities.LPU, error)
	FindByQuoteToken(ctx context.Context, token string) (entities.LPU, error)
	List(ctx context.Context) ([]entities.LPU, error)
	Save(ctx context.Context, l entities.LPU, expectedVersion int64) (entities.LPU, error)
	Delete(ctx context.Context, id string) (bool, error)
}
