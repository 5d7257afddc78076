package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"trading_backend/internal/feature/catalog/domain"
	"trading_backend/internal/feature/catalog/domain/entity"
	"trading_backend/internal/feature/catalog/transport/handler"
)

// mockCatalogUsecase はCatalogUsecaseインターフェースのモック実装です。
type mockCatalogUsecase struct {
	StrategiesFunc func(ctx context.Context, tier string) ([]entity.Strategy, error)
	ModelsFunc     func(ctx context.Context, tier string) ([]entity.AIModel, error)
}

func (m *mockCatalogUsecase) Strategies(ctx context.Context, tier string) ([]entity.Strategy, error) {
	return m.StrategiesFunc(ctx, tier)
}

func (m *mockCatalogUsecase) Models(ctx context.Context, tier string) ([]entity.AIModel, error) {
	return m.ModelsFunc(ctx, tier)
}

// TestCatalogHandler はStrategies/ModelsのHTTPリクエスト/レスポンス処理をテストします。
func TestCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := &mockCatalogUsecase{
		StrategiesFunc: func(ctx context.Context, tier string) ([]entity.Strategy, error) {
			switch tier {
			case "gold":
				return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
			case "broken":
				return nil, errors.New("db down")
			}
			return []entity.Strategy{
				{ID: 4, Name: "ICT Concept", Code: "ict", Credits: 5, WinRate: 81, Risk: "Medium", Tier: "pro", SortKey: 4},
			}, nil
		},
		ModelsFunc: func(ctx context.Context, tier string) ([]entity.AIModel, error) {
			return []entity.AIModel{
				{Name: "Grok AI", Description: "Pay-per-use", Credits: "Variable", Accuracy: 88, Tier: "max"},
			}, nil
		},
	}
	h := handler.NewCatalogHandler(uc)
	r := gin.New()
	r.GET("/catalog/strategies", h.Strategies)
	r.GET("/catalog/models", h.Models)

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "strategies: success",
			url:            "/catalog/strategies?tier=pro",
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"name":"ICT Concept","code":"ict","credits":5,"win_rate":81,"risk":"Medium","tier":"pro"}]`,
		},
		{
			name:           "strategies: unknown tier",
			url:            "/catalog/strategies?tier=gold",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"unknown tier: \"gold\""}`,
		},
		{
			name:           "strategies: repository failure is hidden",
			url:            "/catalog/strategies?tier=broken",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
		{
			name:           "models: success",
			url:            "/catalog/models",
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"name":"Grok AI","description":"Pay-per-use","credits":"Variable","accuracy":88,"tier":"max"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
