package api

import (
	authUsecase "gadgetverse-backend/internal/auth/usecase"
	productUsecase "gadgetverse-backend/internal/product/usecase"
	"gadgetverse-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	productUsecase productUsecase.ProductUsecase
	config         *config.Config
	logger         zerolog.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, productUc productUsecase.ProductUsecase, cfg *config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		authUsecase:    authUc,
		productUsecase: productUc,
		config:         cfg,
		logger:         logger,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())
	r.Use(RequestLogger(h.logger))

	SetupRoutes(r, h.authUsecase, h.productUsecase, h.logger)

	return r.Run(addr)
}
