package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"clovermarket/domain"
)

type OrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Add(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
}

func (s *OrderStore) FindOrdersContainingProduct(ctx context.Context, productID uint64, limit int) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Order, 0)
	for _, order := range s.orders {
		for _, item := range order.Items {
			if item.ProductID == productID {
				matched = append(matched, order)
				break
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}
