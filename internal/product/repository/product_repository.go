package repository

import (
	"context"
	"errors"

	"gadgetverse-backend/internal/product/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements ProductRepository against the products collection
type productRepository struct {
	products *mongo.Collection
}

// NewProductRepository creates a new instance of productRepository
func NewProductRepository(products *mongo.Collection) ProductRepository {
	return &productRepository{
		products: products,
	}
}

// buildListFilter composes the list query. A non-sentinel category is an
// exact match; a search term ORs a case-insensitive pattern over title
// and category. Both constraints AND together when supplied.
func buildListFilter(category, search string) bson.M {
	filter := bson.M{}

	if category != "" && category != domain.CategoryAll {
		filter["category"] = category
	}

	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": primitive.Regex{Pattern: search, Options: "i"}},
			bson.M{"category": primitive.Regex{Pattern: search, Options: "i"}},
		}
	}

	return filter
}

func (r *productRepository) Find(ctx context.Context, category, search string) ([]domain.Product, error) {
	cursor, err := r.products.Find(ctx, buildListFilter(category, search))
	if err != nil {
		return nil, err
	}

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// recentFindOptions orders newest createdAt first and caps the result set.
func recentFindOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
}

func (r *productRepository) FindRecent(ctx context.Context, limit int64) ([]domain.Product, error) {
	cursor, err := r.products.Find(ctx, bson.M{}, recentFindOptions(limit))
	if err != nil {
		return nil, err
	}

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	var product domain.Product
	err := r.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Insert(ctx context.Context, product domain.Product) (primitive.ObjectID, error) {
	result, err := r.products.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return oid, nil
}

func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
