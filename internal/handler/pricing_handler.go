package handler

import (
	"net/http"

	"conf-ticket-pricing/internal/service"
	"conf-ticket-pricing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PricingHandler struct {
	service service.PricingService
}

func NewPricingHandler(service service.PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

func (h *PricingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("pricing", h.GetPricing)
		router.GET("pricing/stage", h.GetCurrentStage)
	}
}

func (h *PricingHandler) GetPricing(c *gin.Context) {
	response, err := h.service.GetPricing(c)
	if err != nil {
		h.handleError(c, err, "GetPricing")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PricingHandler) GetCurrentStage(c *gin.Context) {
	response, err := h.service.GetCurrentStage(c)
	if err != nil {
		h.handleError(c, err, "GetCurrentStage")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *PricingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	log.Error("Unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
