package handler

import (
	"net/http"

	"conf-ticket-pricing/internal/model"
	"conf-ticket-pricing/internal/service"
	apperrors "conf-ticket-pricing/pkg/app_errors"
	"conf-ticket-pricing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(service service.SalesService) *SalesHandler {
	return &SalesHandler{service: service}
}

func (h *SalesHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("sales", h.CreateSale)
		router.GET("sales", h.ListSales)
		router.GET("sales/:uuid", h.GetSaleBySaleID)
	}
}

func (h *SalesHandler) CreateSale(c *gin.Context) {
	var req model.CreateSaleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	sale, err := h.service.PrepareSale(c, req)
	if err != nil {
		h.handleError(c, err, "CreateSale")
		return
	}

	// 入帳走隊列非同步完成，這裡回 202
	c.JSON(http.StatusAccepted, model.NewSaleResponse(sale))
}

func (h *SalesHandler) ListSales(c *gin.Context) {
	sales, err := h.service.ListSales(c)
	if err != nil {
		h.handleError(c, err, "ListSales")
		return
	}

	responses := make([]*model.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, model.NewSaleResponse(sale))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *SalesHandler) GetSaleBySaleID(c *gin.Context) {
	uuidStr := c.Param("uuid")
	saleID, err := uuid.Parse(uuidStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale uuid"})
		return
	}

	sale, err := h.service.GetSaleBySaleID(c, saleID)
	if err != nil {
		h.handleError(c, err, "GetSaleBySaleID")
		return
	}
	c.JSON(http.StatusOK, model.NewSaleResponse(sale))
}

func (h *SalesHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrUnknownCategory:
		log.Warn("Unknown category")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
	case err == apperrors.ErrCategorySoldOut:
		log.Warn("Category sold out")
		c.JSON(http.StatusConflict, gin.H{"error": "Category sold out"})
	case err == apperrors.ErrInsufficientStock:
		log.Warn("Insufficient stock")
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
	case err == apperrors.ErrSaleNotFound:
		log.Warn("Sale not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
