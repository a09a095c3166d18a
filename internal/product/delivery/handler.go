package delivery

import (
	"errors"
	"net/http"

	"gadgetverse-backend/internal/product/domain"
	"gadgetverse-backend/internal/product/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	logger         zerolog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productUsecase usecase.ProductUsecase, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		logger:         logger,
	}
}

// List returns all products matching the optional filters
// GET /api/products?category=&search=
func (h *ProductHandler) List(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	products, err := h.productUsecase.List(c.Request.Context(), category, search)
	if err != nil {
		h.logger.Error().Err(err).Str("category", category).Str("search", search).Msg("fetching products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Recent returns the six newest products
// GET /api/products/recent
func (h *ProductHandler) Recent(c *gin.Context) {
	products, err := h.productUsecase.Recent(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("fetching recent products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetByID returns a single product
// GET /api/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProductID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("fetching product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create persists an arbitrary product document
// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.productUsecase.Create(c.Request.Context(), product)
	if err != nil {
		h.logger.Error().Err(err).Msg("adding product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Delete removes a product by id
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.productUsecase.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProductID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("deleting product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
