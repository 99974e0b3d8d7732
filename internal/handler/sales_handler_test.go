package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"conf-ticket-pricing/internal/handler"
	"conf-ticket-pricing/internal/model"
	"conf-ticket-pricing/internal/pricing"
	"conf-ticket-pricing/internal/service/mocks"
	apperrors "conf-ticket-pricing/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSalesTestRouter(mockService *mocks.MockSalesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	salesHandler := handler.NewSalesHandler(mockService)
	salesHandler.RegisterRoutes(router)

	return router
}

func TestCreateSale(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		mockService.On("PrepareSale", mock.Anything, mock.Anything).Return(&model.Sale{
			SaleID:   uuid.New(),
			Stage:    pricing.StageEarly,
			Category: pricing.CategoryStandard,
			Quantity: 2,
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/sales", model.CreateSaleRequest{
			Category: "standard",
			Quantity: 2,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), "early")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing quantity", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/sales", map[string]interface{}{
			"category": "standard",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "PrepareSale", mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrUnknownCategory", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		mockService.On("PrepareSale", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnknownCategory).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/sales", model.CreateSaleRequest{
			Category: "backstage",
			Quantity: 1,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrCategorySoldOut", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		mockService.On("PrepareSale", mock.Anything, mock.Anything).Return(nil, apperrors.ErrCategorySoldOut).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/sales", model.CreateSaleRequest{
			Category: "vip",
			Quantity: 1,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - ErrInsufficientStock", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		mockService.On("PrepareSale", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInsufficientStock).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/sales", model.CreateSaleRequest{
			Category: "standard",
			Quantity: 99,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - ErrInternalServerError", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		mockService.On("PrepareSale", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/sales", model.CreateSaleRequest{
			Category: "standard",
			Quantity: 1,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetSaleBySaleID(t *testing.T) {
	saleID := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		mockService.On("GetSaleBySaleID", mock.Anything, saleID).Return(&model.Sale{
			SaleID:   saleID,
			Stage:    pricing.StageEarly,
			Category: pricing.CategoryVIP,
			Quantity: 1,
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/sales/"+saleID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - invalid uuid", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		req := createJSONHTTPRequest("GET", "/api/v1/sales/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetSaleBySaleID", mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrSaleNotFound", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		mockService.On("GetSaleBySaleID", mock.Anything, saleID).Return(nil, apperrors.ErrSaleNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/sales/"+saleID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListSales(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockSalesService()
		router := setupSalesTestRouter(mockService)

		mockService.On("ListSales", mock.Anything).Return([]*model.Sale{
			{SaleID: uuid.New(), Stage: pricing.StageEarly, Category: pricing.CategoryStandard, Quantity: 1},
			{SaleID: uuid.New(), Stage: pricing.StageStandard, Category: pricing.CategoryVIP, Quantity: 2},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/sales", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}
