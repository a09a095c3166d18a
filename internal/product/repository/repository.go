package repository

import (
	"context"

	"gadgetverse-backend/internal/product/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Find returns products matching the category/search constraints,
	// in the store's natural order
	Find(ctx context.Context, category, search string) ([]domain.Product, error)

	// FindRecent returns up to limit products, newest createdAt first
	FindRecent(ctx context.Context, limit int64) ([]domain.Product, error)

	// FindByID returns (nil, nil) when no product has the given id
	FindByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error)

	// Insert persists a new product document and returns its assigned id
	Insert(ctx context.Context, product domain.Product) (primitive.ObjectID, error)

	// Delete removes the product and reports how many documents matched
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
