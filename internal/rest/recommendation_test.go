package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartShop/business/recommendation"
	"smartShop/domain"
)

type stubRecoService struct {
	lastInput recommendation.RecommendInput
	result    domain.RecommendationResult
}

func (s *stubRecoService) Recommend(ctx context.Context, input recommendation.RecommendInput) domain.RecommendationResult {
	s.lastInput = input
	return s.result
}

func newRecommendContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRecommendHandler_OK(t *testing.T) {
	svc := &stubRecoService{
		result: domain.RecommendationResult{
			Products: []domain.ScoredProduct{
				{Product: domain.Product{ID: 2, ProductName: "Phone B"}, Similarity: 0.39},
			},
			Page:  1,
			Pages: 1,
		},
	}
	h := NewRecommendationHandler(svc)

	c, rec := newRecommendContext(`{
		"cart_items": [{"product_id": 1, "category": "Phone", "brand": "X", "price": 100, "rating": 4}],
		"page": 1
	}`)

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, svc.lastInput.CartItems, 1)
	assert.Equal(t, uint64(1), svc.lastInput.CartItems[0].ProductID)
	assert.Equal(t, uint(0), svc.lastInput.UserID)
	assert.Equal(t, 1, svc.lastInput.Page)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, rec.Body.String(), "Phone B")
}

func TestRecommendHandler_AuthenticatedUserForwarded(t *testing.T) {
	svc := &stubRecoService{result: domain.RecommendationResult{Page: 1, Pages: 1}}
	h := NewRecommendationHandler(svc)

	c, rec := newRecommendContext(`{}`)
	c.Set("user_id", uint(42))

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), svc.lastInput.UserID)
}

func TestRecommendHandler_InvalidBody(t *testing.T) {
	svc := &stubRecoService{}
	h := NewRecommendationHandler(svc)

	c, rec := newRecommendContext(`{not json`)

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendHandler_NegativePageRejected(t *testing.T) {
	svc := &stubRecoService{}
	h := NewRecommendationHandler(svc)

	c, rec := newRecommendContext(`{"page": -1}`)

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
