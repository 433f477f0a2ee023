package recommendation

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"smartShop/domain"
	"smartShop/pkg/config"
	"smartShop/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// PurchaseHistoryRepository provides the user's past purchases, newest
// first, deduplicated by product id.
type PurchaseHistoryRepository interface {
	FindPurchaseHistory(ctx context.Context, userID uint) ([]domain.PurchasedItem, error)
}

type RecommendInput struct {
	CartItems      []domain.UserItem
	ViewedProducts []domain.ViewedProduct
	UserID         uint
	Page           int
	PageSize       int
}

type RecommendationService struct {
	productRepo     ProductRepository
	historyRepo     PurchaseHistoryRepository
	defaultPageSize int
	maxPageSize     int
}

func NewRecommendationService(
	productRepo ProductRepository,
	historyRepo PurchaseHistoryRepository,
	cfg config.RecoConfig,
) *RecommendationService {
	defaultPageSize := cfg.DefaultPageSize
	if defaultPageSize <= 0 {
		defaultPageSize = 8
	}
	maxPageSize := cfg.MaxPageSize
	if maxPageSize < defaultPageSize {
		maxPageSize = defaultPageSize
	}

	return &RecommendationService{
		productRepo:     productRepo,
		historyRepo:     historyRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Recommend ranks the full catalog for the user. It never fails hard:
// recommendation is a best-effort enhancement, so any scoring error or
// panic degrades to an empty, well-formed result at this boundary.
func (s *RecommendationService) Recommend(ctx context.Context, input RecommendInput) (result domain.RecommendationResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic during recommendation scoring", "panic", r)
			RecoDegradedTotal.Inc()
			result = emptyResult()
		}
	}()

	result, err := s.recommend(ctx, input)
	if err != nil {
		logger.Error("recommendation scoring failed, degrading to empty result", err)
		RecoDegradedTotal.Inc()
		return emptyResult()
	}

	return result
}

func (s *RecommendationService) recommend(ctx context.Context, input RecommendInput) (domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	page := input.Page
	if page <= 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	// catalog snapshot, the only external read besides purchase history
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("load catalog: %w", err)
	}

	// purchase history is an enhancement; losing it must not fail the request
	var purchased []domain.PurchasedItem
	if input.UserID != 0 && s.historyRepo != nil {
		purchased, err = s.historyRepo.FindPurchaseHistory(ctx, input.UserID)
		if err != nil {
			logger.Warn("failed to load purchase history, continuing without it", "user_id", input.UserID, "error", err)
			purchased = nil
		}
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"user_id", input.UserID,
		"cart_items", len(input.CartItems),
		"viewed_products", len(input.ViewedProducts),
		"purchases", len(purchased),
		"catalog_size", len(products),
		"page", page,
		"page_size", pageSize,
	)

	if len(input.CartItems) == 0 && len(input.ViewedProducts) == 0 && len(purchased) == 0 {
		RecoExploreModeTotal.Inc()
		return s.exploreResult(products, page, pageSize), nil
	}

	items := buildUserItems(input.CartItems, input.ViewedProducts, purchased)
	profile := buildUserProfile(items)

	stats := BuildCatalogStats(products)
	vectors := make([][]float64, 0, len(items))
	for _, item := range items {
		vectors = append(vectors, itemVector(item, stats))
	}
	userVec := meanVector(vectors)

	if len(products) == 0 || len(userVec) == 0 {
		return domain.RecommendationResult{
			Products:    []domain.ScoredProduct{},
			Page:        1,
			Pages:       1,
			UserProfile: &profile,
		}, nil
	}

	itemFeatures := itemFeatureMaps(items)

	cartIDs := make(map[uint64]struct{}, len(input.CartItems))
	for _, item := range input.CartItems {
		cartIDs[item.ProductID] = struct{}{}
	}
	purchases := latestPurchases(purchased)
	viewCounts := make(map[uint64]int, len(input.ViewedProducts))
	for _, v := range input.ViewedProducts {
		viewCounts[v.ProductID] = v.ViewCount
	}

	now := time.Now()

	scored := make([]domain.ScoredProduct, 0, len(products))
	for _, p := range products {
		traditional := cosineSimilarity(userVec, productVector(p, stats))

		productFeatures := ExtractFeatures(p.Description)
		description := descriptionSimilarity(itemFeatures, profile.CommonFeatures, productFeatures)

		base := blendSimilarity(traditional, description)
		signal := interactionWeight(p.ID, cartIDs, purchases, now)

		breakdown := buildTraditionalBreakdown(profile, p)
		pairs := matchedFeaturePairs(itemFeatures, profile.CommonFeatures, productFeatures)

		_, wasPurchased := purchases[p.ID]

		scored = append(scored, domain.ScoredProduct{
			Product:             p,
			Similarity:          round4(base * signal.Weight),
			InCart:              signal.Reason == ReasonInCart,
			PreviouslyPurchased: wasPurchased,
			ViewCount:           viewCounts[p.ID],
			Explanation:         buildExplanation(p, breakdown, traditional, description, base, signal, pairs),
		})
	}

	// stable sort keeps the original catalog order as the tie-break
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	pageItems, pages := paginate(scored, page, pageSize)

	return domain.RecommendationResult{
		Products:    pageItems,
		Page:        page,
		Pages:       pages,
		UserProfile: &profile,
	}, nil
}

// exploreResult surfaces the newest catalog additions when the user has no
// signal at all.
func (s *RecommendationService) exploreResult(products []domain.Product, page, pageSize int) domain.RecommendationResult {
	recent := make([]domain.Product, len(products))
	copy(recent, products)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	scored := make([]domain.ScoredProduct, 0, len(recent))
	for _, p := range recent {
		scored = append(scored, domain.ScoredProduct{
			Product:                     p,
			Similarity:                  0,
			ExploreToGetRecommendations: true,
			Explanation:                 exploreExplanationFor(),
		})
	}

	pageItems, pages := paginate(scored, page, pageSize)

	return domain.RecommendationResult{
		Products:      pageItems,
		Page:          page,
		Pages:         pages,
		IsExploreMode: true,
	}
}

func paginate(scored []domain.ScoredProduct, page, pageSize int) ([]domain.ScoredProduct, int) {
	pages := (len(scored) + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}

	start := (page - 1) * pageSize
	if start >= len(scored) {
		return []domain.ScoredProduct{}, pages
	}

	end := start + pageSize
	if end > len(scored) {
		end = len(scored)
	}

	return scored[start:end], pages
}

func emptyResult() domain.RecommendationResult {
	return domain.RecommendationResult{
		Products: []domain.ScoredProduct{},
		Page:     1,
		Pages:    1,
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
