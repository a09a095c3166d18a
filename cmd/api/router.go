package api

import (
	"net/http"

	authDelivery "gadgetverse-backend/internal/auth/delivery"
	authUsecase "gadgetverse-backend/internal/auth/usecase"
	productDelivery "gadgetverse-backend/internal/product/delivery"
	productUsecase "gadgetverse-backend/internal/product/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, productUc productUsecase.ProductUsecase, logger zerolog.Logger) {
	authHandler := authDelivery.NewAuthHandler(authUc, logger)
	productHandler := productDelivery.NewProductHandler(productUc, logger)

	// Root liveness route
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "GadgetVerse Server Running")
	})

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/user", authHandler.GetUser)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/recent", productHandler.Recent)
			products.GET("/:id", productHandler.GetByID)
			products.POST("", productHandler.Create)
			products.DELETE("/:id", productHandler.Delete)
		}
	}
}
