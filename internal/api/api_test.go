package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/snapdish/backend/internal/model"
	"github.com/pageza/snapdish/backend/internal/service"
	"github.com/pageza/snapdish/backend/internal/types"
)

type stubVision struct {
	result *model.GenerationResult
	err    error
}

func (s *stubVision) Generate(ctx context.Context, imageDataURL, notes string) (*model.GenerationResult, error) {
	return s.result, s.err
}

type stubMessenger struct {
	outcome *model.DeliveryOutcome
	err     error
}

func (s *stubMessenger) Send(ctx context.Context, message, recipient string) (*model.DeliveryOutcome, error) {
	return s.outcome, s.err
}

func setupRouter(vision service.IVisionService, messenger service.IMessengerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	NewRecipeHandler(vision, zap.NewNop()).RegisterRoutes(v1)
	NewMessageHandler(messenger, zap.NewNop()).RegisterRoutes(v1)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	validRecipe := model.Recipe{
		Name:        "Quick Tomato Basil Pasta",
		Description: "A fast weeknight pasta",
		Ingredients: []string{"200g pasta", "2 tomatoes", "basil"},
		Steps:       []string{"Boil pasta", "Saute tomatoes", "Combine everything"},
	}

	t.Run("should return summary and recipes on success", func(t *testing.T) {
		router := setupRouter(&stubVision{result: &model.GenerationResult{
			Summary: "Detected tomatoes, pasta, basil",
			Recipes: []model.Recipe{validRecipe, validRecipe, validRecipe},
		}}, &stubMessenger{})

		w := doJSON(t, router, "/api/v1/recipes/generate", types.GenerateRequest{
			ImageDataURL: "data:image/png;base64,iVBORw0KGgo=",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp types.GenerateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Detected tomatoes, pasta, basil", resp.Summary)
		assert.Len(t, resp.Recipes, 3)
	})

	t.Run("should return 400 when imageDataUrl is missing", func(t *testing.T) {
		router := setupRouter(&stubVision{}, &stubMessenger{})
		w := doJSON(t, router, "/api/v1/recipes/generate", gin.H{"notes": "hello"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should map error kinds onto statuses", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{service.NewValidationError("bad image"), http.StatusBadRequest},
			{service.NewParseError("retake the photo", nil), http.StatusUnprocessableEntity},
			{service.NewSchemaError("retake the photo", nil), http.StatusUnprocessableEntity},
			{service.NewUpstreamError("model down", 503, "unavailable", nil), http.StatusBadGateway},
			{service.NewConfigError("no key"), http.StatusInternalServerError},
		}

		for _, tc := range cases {
			router := setupRouter(&stubVision{err: tc.err}, &stubMessenger{})
			w := doJSON(t, router, "/api/v1/recipes/generate", types.GenerateRequest{
				ImageDataURL: "data:image/png;base64,iVBORw0KGgo=",
			})

			assert.Equal(t, tc.status, w.Code)
			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		}
	})

	t.Run("should include upstream detail on bad gateway", func(t *testing.T) {
		router := setupRouter(&stubVision{
			err: service.NewUpstreamError("model request failed", 500, `{"error":"overloaded"}`, nil),
		}, &stubMessenger{})

		w := doJSON(t, router, "/api/v1/recipes/generate", types.GenerateRequest{
			ImageDataURL: "data:image/png;base64,iVBORw0KGgo=",
		})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Details, "overloaded")
	})
}

func TestMessagesEndpoint(t *testing.T) {
	t.Run("should report queued with id", func(t *testing.T) {
		router := setupRouter(&stubVision{}, &stubMessenger{
			outcome: &model.DeliveryOutcome{State: model.DeliveryQueued, ID: "wamid.abc"},
		})

		w := doJSON(t, router, "/api/v1/messages", types.SendMessageRequest{
			Message:     "🍳 SnapDish Recipes transcript body",
			PhoneNumber: "+15551234567",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"queued","id":"wamid.abc"}`, w.Body.String())
	})

	t.Run("should report sent with null id", func(t *testing.T) {
		router := setupRouter(&stubVision{}, &stubMessenger{
			outcome: &model.DeliveryOutcome{State: model.DeliverySent},
		})

		w := doJSON(t, router, "/api/v1/messages", types.SendMessageRequest{
			Message: "🍳 SnapDish Recipes transcript body",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"sent","id":null}`, w.Body.String())
	})

	t.Run("should return 400 when message is missing", func(t *testing.T) {
		router := setupRouter(&stubVision{}, &stubMessenger{})
		w := doJSON(t, router, "/api/v1/messages", gin.H{"phoneNumber": "+15551234567"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should map delivery faults per taxonomy", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{service.NewConfigError("messaging credentials are not configured"), http.StatusInternalServerError},
			{service.NewValidationError("no recipient"), http.StatusBadRequest},
			{service.NewUpstreamError("rejected", 401, "invalid token", nil), http.StatusBadGateway},
		}

		for _, tc := range cases {
			router := setupRouter(&stubVision{}, &stubMessenger{err: tc.err})
			w := doJSON(t, router, "/api/v1/messages", types.SendMessageRequest{
				Message: "🍳 SnapDish Recipes transcript body",
			})
			assert.Equal(t, tc.status, w.Code)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
