package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"coinwagon/pkg/middleware"
	"coinwagon/pkg/service"
)

type Handler struct {
	services *service.Service
}

func NewHandler(services *service.Service) *Handler {
	return &Handler{services: services}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	api := router.Group("/api")
	{
		api.GET("/price/:asset/:fiat", h.CurrentPrice)
		api.GET("/balance/:asset/:address", h.AddressBalance)
		api.POST("/wallet-balance", h.WalletBalance)
	}
	return router
}
