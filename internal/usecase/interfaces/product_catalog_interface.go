package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
)

// IProductCatalog is the read side of the external catalog collaborator.
// GetByID returns a zero Product when the id is unknown.
type IProductCatalog interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
