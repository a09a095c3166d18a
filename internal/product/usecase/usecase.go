package usecase

import (
	"context"

	"gadgetverse-backend/internal/product/domain"
	"gadgetverse-backend/internal/product/dto"
)

// ProductUsecase defines the catalog operations exposed to delivery
type ProductUsecase interface {
	// List returns products matching the optional category and search filters
	List(ctx context.Context, category, search string) ([]domain.Product, error)

	// Recent returns the newest products, capped at six
	Recent(ctx context.Context) ([]domain.Product, error)

	// GetByID returns ErrInvalidProductID for a malformed id and
	// ErrProductNotFound when no document matches
	GetByID(ctx context.Context, id string) (domain.Product, error)

	// Create persists the caller's fields with a server-assigned createdAt
	Create(ctx context.Context, product domain.Product) (*dto.InsertResult, error)

	// Delete removes a product; same error contract as GetByID
	Delete(ctx context.Context, id string) error
}
