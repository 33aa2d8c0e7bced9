package recommendation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"clovermarket/domain"
	"clovermarket/pkg/logger"
	"clovermarket/pkg/metrics"
)

// ---- Repository interfaces ----

type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindActivePool(ctx context.Context, excludeID uint64, limit int) ([]domain.Product, error)
	FindActiveByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
	FindActiveByCategory(ctx context.Context, category string, excludeID uint64, limit int) ([]domain.Product, error)
}

type OrderRepository interface {
	FindOrdersContainingProduct(ctx context.Context, productID uint64, limit int) ([]domain.Order, error)
}

// ---- Service ----

// Service computes product recommendations. Every public method is
// fail-soft: a missing reference product or a store fault is logged, counted
// and converted to an empty list, never surfaced to the caller. The widget
// must not break the page it renders on.
type Service struct {
	productRepo ProductRepository
	orderRepo   OrderRepository
	cfg         Config
	now         func() time.Time
}

func NewService(productRepo ProductRepository, orderRepo OrderRepository, cfg Config) *Service {
	return &Service{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cfg:         cfg.normalize(),
		now:         time.Now,
	}
}

// GetProductRecommendations ranks the active candidate pool against the
// reference product with the weighted heuristics and returns the top results.
func (s *Service) GetProductRecommendations(ctx context.Context, productID uint64, limit int) []domain.Product {
	if limit <= 0 {
		limit = s.cfg.RelatedLimit
	}

	products, err := s.relatedByScore(ctx, productID, limit)
	if err != nil {
		return s.failSoft("related", productID, err)
	}

	if len(products) == 0 {
		metrics.RecommendEmpty.WithLabelValues(metrics.EmptyReasonNoMatch).Inc()
	}

	return products
}

// GetFrequentlyBoughtTogether recommends products co-purchased with the
// reference, by descending co-purchase frequency. Without any purchase
// history it delegates entirely to the scoring path.
func (s *Service) GetFrequentlyBoughtTogether(ctx context.Context, productID uint64, limit int) []domain.Product {
	if limit <= 0 {
		limit = s.cfg.BoughtTogetherLimit
	}

	products, err := s.boughtTogether(ctx, productID, limit)
	if err != nil {
		return s.failSoft("bought_together", productID, err)
	}

	if len(products) == 0 {
		metrics.RecommendEmpty.WithLabelValues(metrics.EmptyReasonNoMatch).Inc()
	}

	return products
}

// GetCategoryBasedRecommendations returns the newest active products in the
// given category, excluding the reference. An empty category short-circuits
// to an empty result without touching the store.
func (s *Service) GetCategoryBasedRecommendations(ctx context.Context, productID uint64, category string, limit int) []domain.Product {
	if category == "" {
		return []domain.Product{}
	}

	if limit <= 0 {
		limit = s.cfg.RelatedLimit
	}

	products, err := s.productRepo.FindActiveByCategory(ctx, category, productID, limit)
	if err != nil {
		return s.failSoft("category", productID, err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products
}

func (s *Service) relatedByScore(ctx context.Context, productID uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ref, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	pool, err := s.productRepo.FindActivePool(ctx, ref.ID, s.cfg.CandidatePoolSize)
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}

	return rank(ref, pool, limit, s.now(), s.cfg.RecencyWindow), nil
}

func (s *Service) boughtTogether(ctx context.Context, productID uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	orders, err := s.orderRepo.FindOrdersContainingProduct(ctx, productID, s.cfg.OrderScanLimit)
	if err != nil {
		return nil, fmt.Errorf("scan co-purchase orders: %w", err)
	}

	// One increment per co-occurring order item; a product repeated inside
	// the same order counts each time.
	frequency := make(map[uint64]int)
	for _, order := range orders {
		for _, item := range order.Items {
			if item.ProductID == productID {
				continue
			}
			frequency[item.ProductID]++
		}
	}

	if len(frequency) == 0 {
		return s.relatedByScore(ctx, productID, limit)
	}

	ids := topByFrequency(frequency, limit)

	products, err := s.productRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch co-purchased products: %w", err)
	}

	// A purchased product that is no longer active is dropped, which can
	// leave fewer than limit results; no backfill from the scoring path.
	return orderByIDs(products, ids), nil
}

// topByFrequency sorts product ids by descending count, ties by ascending id
// so repeated calls stay deterministic, and truncates.
func topByFrequency(frequency map[uint64]int, limit int) []uint64 {
	ids := make([]uint64, 0, len(frequency))
	for id := range frequency {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if frequency[ids[i]] != frequency[ids[j]] {
			return frequency[ids[i]] > frequency[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > limit {
		ids = ids[:limit]
	}

	return ids
}

func orderByIDs(products []domain.Product, ids []uint64) []domain.Product {
	byID := make(map[uint64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]domain.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	return ordered
}

// failSoft converts an internal fault into the empty result the caller
// contract promises, keeping the not-found/store-fault distinction visible in
// logs and metrics.
func (s *Service) failSoft(op string, productID uint64, err error) []domain.Product {
	if errors.Is(err, domain.ErrProductNotFound) {
		logger.Info("recommendation reference product missing", "op", op, "product_id", productID)
		metrics.RecommendEmpty.WithLabelValues(metrics.EmptyReasonNotFound).Inc()
	} else {
		logger.Error("recommendation store fault", "op", op, "product_id", productID, "error", err)
		metrics.RecommendEmpty.WithLabelValues(metrics.EmptyReasonStoreFault).Inc()
	}

	return []domain.Product{}
}
