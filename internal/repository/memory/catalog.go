// Package memory is an in-memory catalog/order backend. It translates the
// predicate tree by direct evaluation, which keeps the query contract honest
// across backends and doubles as the store for service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"clovermarket/domain"
)

type CatalogStore struct {
	mu       sync.RWMutex
	products map[uint64]domain.Product
	nextID   uint64
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		products: make(map[uint64]domain.Product),
		nextID:   1,
	}
}

func (s *CatalogStore) FindPage(ctx context.Context, pred domain.Predicate, order []domain.OrderBy, limit, offset int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	matched := s.matching(pred)
	applyOrder(matched, order)

	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], nil
}

func (s *CatalogStore) Count(ctx context.Context, pred domain.Predicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	return int64(len(s.matching(pred))), nil
}

func (s *CatalogStore) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}

	return product, nil
}

func (s *CatalogStore) FindActivePool(ctx context.Context, excludeID uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	active := s.matching(domain.Equals{Field: domain.FieldStatus, Value: domain.ProductStatusActive})
	applyOrder(active, []domain.OrderBy{{Field: domain.FieldID}})

	pool := make([]domain.Product, 0, limit)
	for _, p := range active {
		if p.ID == excludeID {
			continue
		}
		pool = append(pool, p)
		if limit > 0 && len(pool) == limit {
			break
		}
	}

	return pool, nil
}

func (s *CatalogStore) FindActiveByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := s.products[id]
		if !ok || p.Status != domain.ProductStatusActive {
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

func (s *CatalogStore) FindActiveByCategory(ctx context.Context, category string, excludeID uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	matched := s.matching(domain.And{Preds: []domain.Predicate{
		domain.Equals{Field: domain.FieldStatus, Value: domain.ProductStatusActive},
		domain.Equals{Field: domain.FieldCategory, Value: category, Fold: true},
	}})
	applyOrder(matched, []domain.OrderBy{
		{Field: domain.FieldCreatedAt, Desc: true},
		{Field: domain.FieldID},
	})

	products := make([]domain.Product, 0, limit)
	for _, p := range matched {
		if p.ID == excludeID {
			continue
		}
		products = append(products, p)
		if limit > 0 && len(products) == limit {
			break
		}
	}

	return products, nil
}

func (s *CatalogStore) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == 0 {
		product.ID = s.nextID
	}
	if product.ID >= s.nextID {
		s.nextID = product.ID + 1
	}

	s.products[product.ID] = *product
	return nil
}

func (s *CatalogStore) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}

	s.products[product.ID] = *product
	return nil
}

func (s *CatalogStore) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.ErrProductNotFound
	}

	delete(s.products, id)
	return nil
}

func (s *CatalogStore) FilterMetadata(ctx context.Context) (domain.FilterMetadata, error) {
	if err := ctx.Err(); err != nil {
		return domain.FilterMetadata{}, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	meta := domain.FilterMetadata{}
	seen := make(map[string]struct{})
	first := true

	for _, p := range s.products {
		if p.Category != "" {
			if _, ok := seen[p.Category]; !ok {
				seen[p.Category] = struct{}{}
				meta.Categories = append(meta.Categories, p.Category)
			}
		}

		if first || p.Price.LessThan(meta.MinPrice) {
			meta.MinPrice = p.Price
		}
		if first || p.Price.GreaterThan(meta.MaxPrice) {
			meta.MaxPrice = p.Price
		}
		first = false

		if p.Stock > 0 {
			meta.InStock++
		} else {
			meta.OutOfStock++
		}
	}

	sort.Strings(meta.Categories)

	return meta, nil
}

func (s *CatalogStore) matching(pred domain.Predicate) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Product, 0)
	for _, p := range s.products {
		if matches(pred, p) {
			matched = append(matched, p)
		}
	}

	return matched
}

// matches evaluates a predicate tree against one product.
func matches(pred domain.Predicate, p domain.Product) bool {
	switch pr := pred.(type) {
	case domain.All:
		return true

	case domain.And:
		for _, child := range pr.Preds {
			if !matches(child, p) {
				return false
			}
		}
		return true

	case domain.Or:
		for _, child := range pr.Preds {
			if matches(child, p) {
				return true
			}
		}
		return false

	case domain.Contains:
		return strings.Contains(strings.ToLower(textField(p, pr.Field)), strings.ToLower(pr.Value))

	case domain.Equals:
		value := textField(p, pr.Field)
		if pr.Fold {
			return strings.EqualFold(value, pr.Value)
		}
		return value == pr.Value

	case domain.PriceBetween:
		return p.Price.GreaterThanOrEqual(pr.Min) && p.Price.LessThanOrEqual(pr.Max)

	case domain.HasColor:
		for _, c := range p.Colors {
			if c == pr.Value {
				return true
			}
		}
		return false

	default:
		return false
	}
}

func textField(p domain.Product, field domain.Field) string {
	switch field {
	case domain.FieldName:
		return p.Name
	case domain.FieldDescription:
		return p.Description
	case domain.FieldCategory:
		return p.Category
	case domain.FieldBrand:
		return p.Brand
	case domain.FieldStatus:
		return p.Status
	default:
		return ""
	}
}

func applyOrder(products []domain.Product, order []domain.OrderBy) {
	if len(order) == 0 {
		order = []domain.OrderBy{{Field: domain.FieldID}}
	}

	sort.SliceStable(products, func(i, j int) bool {
		for _, o := range order {
			c := compareField(products[i], products[j], o.Field)
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareField(a, b domain.Product, field domain.Field) int {
	switch field {
	case domain.FieldPrice:
		return a.Price.Cmp(b.Price)
	case domain.FieldCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case domain.FieldID:
		return compareUint(a.ID, b.ID)
	case domain.FieldName:
		return strings.Compare(a.Name, b.Name)
	default:
		return 0
	}
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
