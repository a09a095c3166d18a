package usecase

import (
	"context"
	"time"

	"gadgetverse-backend/internal/product/domain"
	"gadgetverse-backend/internal/product/dto"
	"gadgetverse-backend/internal/product/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recentLimit caps the recent-products feed shown on the storefront.
const recentLimit = 6

// productUsecase implements ProductUsecase interface
type productUsecase struct {
	productRepo repository.ProductRepository
}

// NewProductUsecase creates a new instance of productUsecase
func NewProductUsecase(productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
	}
}

func (u *productUsecase) List(ctx context.Context, category, search string) ([]domain.Product, error) {
	return u.productRepo.Find(ctx, category, search)
}

func (u *productUsecase) Recent(ctx context.Context) ([]domain.Product, error) {
	return u.productRepo.FindRecent(ctx, recentLimit)
}

func (u *productUsecase) GetByID(ctx context.Context, id string) (domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidProductID
	}

	product, err := u.productRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (u *productUsecase) Create(ctx context.Context, product domain.Product) (*dto.InsertResult, error) {
	if product == nil {
		product = domain.Product{}
	}

	// Server-assigned timestamp wins over anything the caller sent.
	product["createdAt"] = time.Now()

	id, err := u.productRepo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	return &dto.InsertResult{
		Acknowledged: true,
		InsertedID:   id,
	}, nil
}

func (u *productUsecase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidProductID
	}

	deleted, err := u.productRepo.Delete(ctx, oid)
	if err != nil {
		return err
	}

	if deleted == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
