package interfaces

import (
	"context"
	"gestao_obras/internal/domain/entities"
)

// ISupplierRepository abstracts DynamoDB persistence for Supplier.
//
// GetByIDs is a batched read; missing ids are simply absent from the result and the
// order of the result is not guaranteed.
type ISupplierRepository interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
	Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	Delete(ctx context.Context, id string) (bool, error)
}
