package postgres

import (
	"testing"

	"clovermarket/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicateSQL_All(t *testing.T) {
	sql, args, err := predicateSQL(domain.All{})
	require.NoError(t, err)
	assert.Equal(t, "1=1", sql)
	assert.Empty(t, args)
}

func TestPredicateSQL_Contains(t *testing.T) {
	sql, args, err := predicateSQL(domain.Contains{Field: domain.FieldName, Value: "runner"})
	require.NoError(t, err)
	assert.Equal(t, "name ILIKE ?", sql)
	assert.Equal(t, []any{"%runner%"}, args)
}

func TestPredicateSQL_ContainsEscapesLikeMetacharacters(t *testing.T) {
	_, args, err := predicateSQL(domain.Contains{Field: domain.FieldName, Value: "100%_off"})
	require.NoError(t, err)
	assert.Equal(t, []any{`%100\%\_off%`}, args)
}

func TestPredicateSQL_EqualsFold(t *testing.T) {
	sql, args, err := predicateSQL(domain.Equals{Field: domain.FieldBrand, Value: "Acme", Fold: true})
	require.NoError(t, err)
	assert.Equal(t, "LOWER(brand) = LOWER(?)", sql)
	assert.Equal(t, []any{"Acme"}, args)
}

func TestPredicateSQL_EqualsExact(t *testing.T) {
	sql, _, err := predicateSQL(domain.Equals{Field: domain.FieldStatus, Value: "ACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, "status = ?", sql)
}

func TestPredicateSQL_PriceBetween(t *testing.T) {
	sql, args, err := predicateSQL(domain.PriceBetween{
		Min: decimal.NewFromInt(10),
		Max: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "price >= ? AND price <= ?", sql)
	assert.Len(t, args, 2)
}

func TestPredicateSQL_HasColor(t *testing.T) {
	sql, args, err := predicateSQL(domain.HasColor{Value: "red"})
	require.NoError(t, err)
	assert.Equal(t, "colors @> ?", sql)
	assert.Equal(t, []any{`["red"]`}, args)
}

func TestPredicateSQL_NestedComposite(t *testing.T) {
	pred := domain.And{Preds: []domain.Predicate{
		domain.Or{Preds: []domain.Predicate{
			domain.Contains{Field: domain.FieldName, Value: "tee"},
			domain.Contains{Field: domain.FieldDescription, Value: "tee"},
		}},
		domain.Equals{Field: domain.FieldBrand, Value: "acme", Fold: true},
	}}

	sql, args, err := predicateSQL(pred)
	require.NoError(t, err)
	assert.Equal(t, "((name ILIKE ?) OR (description ILIKE ?)) AND (LOWER(brand) = LOWER(?))", sql)
	assert.Equal(t, []any{"%tee%", "%tee%", "acme"}, args)
}

func TestPredicateSQL_RejectsUnknownField(t *testing.T) {
	_, _, err := predicateSQL(domain.Contains{Field: domain.Field("robert'); drop"), Value: "x"})
	assert.Error(t, err)
}

func TestOrderSQL(t *testing.T) {
	sql, err := orderSQL([]domain.OrderBy{
		{Field: domain.FieldPrice, Desc: true},
		{Field: domain.FieldID},
	})
	require.NoError(t, err)
	assert.Equal(t, "price DESC, id ASC", sql)
}

func TestOrderSQL_DefaultsToID(t *testing.T) {
	sql, err := orderSQL(nil)
	require.NoError(t, err)
	assert.Equal(t, "id ASC", sql)
}
