package catalog

import (
	"testing"

	"clovermarket/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPredicate_EmptyQueryMatchesAll(t *testing.T) {
	pred := BuildPredicate(domain.CatalogQuery{})
	assert.IsType(t, domain.All{}, pred)
}

func TestBuildPredicate_SearchSpansNameAndDescription(t *testing.T) {
	pred := BuildPredicate(domain.CatalogQuery{Search: "runner"})

	or, ok := pred.(domain.Or)
	require.True(t, ok, "single search constraint should be an Or over name/description")
	require.Len(t, or.Preds, 2)

	assert.Equal(t, domain.Contains{Field: domain.FieldName, Value: "runner"}, or.Preds[0])
	assert.Equal(t, domain.Contains{Field: domain.FieldDescription, Value: "runner"}, or.Preds[1])
}

func TestBuildPredicate_CategoryKeywordExpansion(t *testing.T) {
	pred := BuildPredicate(domain.CatalogQuery{Category: "Clothing"})

	or, ok := pred.(domain.Or)
	require.True(t, ok)

	// equality + description substring + six clothing keywords
	require.Len(t, or.Preds, 8)
	assert.Equal(t, domain.Equals{Field: domain.FieldCategory, Value: "Clothing", Fold: true}, or.Preds[0])
	assert.Equal(t, domain.Contains{Field: domain.FieldDescription, Value: "Clothing"}, or.Preds[1])
	assert.Contains(t, or.Preds, domain.Predicate(domain.Contains{Field: domain.FieldCategory, Value: "shirt"}))
	assert.Contains(t, or.Preds, domain.Predicate(domain.Contains{Field: domain.FieldCategory, Value: "jeans"}))
}

func TestBuildPredicate_UnknownCategoryNoExpansion(t *testing.T) {
	pred := BuildPredicate(domain.CatalogQuery{Category: "electronics"})

	or, ok := pred.(domain.Or)
	require.True(t, ok)
	assert.Len(t, or.Preds, 2)
}

func TestBuildPredicate_PriceClamping(t *testing.T) {
	min := decimal.NewFromInt(-50)
	max := decimal.NewFromInt(99999)
	pred := BuildPredicate(domain.CatalogQuery{MinPrice: &min, MaxPrice: &max})

	between, ok := pred.(domain.PriceBetween)
	require.True(t, ok)
	assert.True(t, between.Min.Equal(decimal.Zero), "negative floor clamps to 0, got %s", between.Min)
	assert.True(t, between.Max.Equal(decimal.NewFromInt(50000)), "oversized ceiling clamps to 50000, got %s", between.Max)
}

func TestBuildPredicate_PriceDefaults(t *testing.T) {
	min := decimal.NewFromInt(25)
	pred := BuildPredicate(domain.CatalogQuery{MinPrice: &min})

	between, ok := pred.(domain.PriceBetween)
	require.True(t, ok)
	assert.True(t, between.Min.Equal(decimal.NewFromInt(25)))
	assert.True(t, between.Max.Equal(decimal.NewFromInt(50000)))
}

func TestBuildPredicate_CombinesWithAnd(t *testing.T) {
	pred := BuildPredicate(domain.CatalogQuery{Search: "tee", Brand: "acme", Color: "red"})

	and, ok := pred.(domain.And)
	require.True(t, ok)
	assert.Len(t, and.Preds, 3)
}

func TestBuildOrder_AlwaysAppendsIDTieBreak(t *testing.T) {
	cases := map[string][]domain.OrderBy{
		domain.SortPriceAsc: {
			{Field: domain.FieldPrice},
			{Field: domain.FieldID},
		},
		domain.SortPriceDesc: {
			{Field: domain.FieldPrice, Desc: true},
			{Field: domain.FieldID},
		},
		domain.SortNewest: {
			{Field: domain.FieldCreatedAt, Desc: true},
			{Field: domain.FieldID},
		},
		"": {
			{Field: domain.FieldCreatedAt, Desc: true},
			{Field: domain.FieldID},
		},
		"bogus": {
			{Field: domain.FieldCreatedAt, Desc: true},
			{Field: domain.FieldID},
		},
	}

	for sortKey, want := range cases {
		assert.Equal(t, want, BuildOrder(sortKey), "sort=%q", sortKey)
	}
}

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-3))
	assert.Equal(t, 1, NormalizePage(1))
	assert.Equal(t, 7, NormalizePage(7))
}
