package memory

import (
	"context"
	"testing"
	"time"

	"clovermarket/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches_Leaves(t *testing.T) {
	p := domain.Product{
		ID:          1,
		Name:        "Trail Runner",
		Description: "Lightweight running shoe",
		Price:       decimal.NewFromInt(120),
		Category:    "Shoes",
		Brand:       "Acme",
		Colors:      []string{"red", "blue"},
		Status:      domain.ProductStatusActive,
	}

	assert.True(t, matches(domain.All{}, p))
	assert.True(t, matches(domain.Contains{Field: domain.FieldName, Value: "RUNNER"}, p))
	assert.False(t, matches(domain.Contains{Field: domain.FieldName, Value: "boot"}, p))
	assert.True(t, matches(domain.Equals{Field: domain.FieldBrand, Value: "acme", Fold: true}, p))
	assert.False(t, matches(domain.Equals{Field: domain.FieldBrand, Value: "acme"}, p))
	assert.True(t, matches(domain.PriceBetween{Min: decimal.NewFromInt(120), Max: decimal.NewFromInt(200)}, p))
	assert.False(t, matches(domain.PriceBetween{Min: decimal.NewFromInt(121), Max: decimal.NewFromInt(200)}, p))
	assert.True(t, matches(domain.HasColor{Value: "blue"}, p))
	assert.False(t, matches(domain.HasColor{Value: "green"}, p))
}

func TestMatches_Composite(t *testing.T) {
	p := domain.Product{Name: "Mug", Category: "Kitchen", Price: decimal.NewFromInt(15)}

	and := domain.And{Preds: []domain.Predicate{
		domain.Contains{Field: domain.FieldName, Value: "mug"},
		domain.Equals{Field: domain.FieldCategory, Value: "kitchen", Fold: true},
	}}
	assert.True(t, matches(and, p))

	or := domain.Or{Preds: []domain.Predicate{
		domain.Contains{Field: domain.FieldName, Value: "plate"},
		domain.Contains{Field: domain.FieldCategory, Value: "kitch"},
	}}
	assert.True(t, matches(or, p))
}

func TestFindPage_OrderAndPagination(t *testing.T) {
	store := NewCatalogStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	prices := []int64{30, 10, 20, 10}
	for i, price := range prices {
		p := domain.Product{
			Name:      "P",
			Price:     decimal.NewFromInt(price),
			Status:    domain.ProductStatusActive,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.Create(ctx, &p))
	}

	order := []domain.OrderBy{
		{Field: domain.FieldPrice},
		{Field: domain.FieldID},
	}

	page, err := store.FindPage(ctx, domain.All{}, order, 3, 0)
	require.NoError(t, err)
	require.Len(t, page, 3)

	// price asc with id tie-break: 10(id2), 10(id4), 20(id3)
	assert.Equal(t, uint64(2), page[0].ID)
	assert.Equal(t, uint64(4), page[1].ID)
	assert.Equal(t, uint64(3), page[2].ID)

	rest, err := store.FindPage(ctx, domain.All{}, order, 3, 3)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, uint64(1), rest[0].ID)
}

func TestFindOrdersContainingProduct(t *testing.T) {
	store := NewOrderStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	store.Add(domain.Order{ID: 1, CreatedAt: base, Items: []domain.OrderItem{{ProductID: 7}}})
	store.Add(domain.Order{ID: 2, CreatedAt: base.Add(time.Hour), Items: []domain.OrderItem{{ProductID: 8}}})
	store.Add(domain.Order{ID: 3, CreatedAt: base.Add(2 * time.Hour), Items: []domain.OrderItem{{ProductID: 7}, {ProductID: 8}}})

	orders, err := store.FindOrdersContainingProduct(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// newest first
	assert.Equal(t, uint64(3), orders[0].ID)
	assert.Equal(t, uint64(1), orders[1].ID)
}
