package catalog

import (
	"strings"

	"clovermarket/domain"

	"github.com/shopspring/decimal"
)

const PageSize = 10

var (
	priceFloor   = decimal.Zero
	priceCeiling = decimal.NewFromInt(50000)
)

// Umbrella categories expand to keyword matches so a "clothing" filter also
// catches products stored under "Dress Shirt" or "Slim Jeans". Unknown
// categories fall back to plain equality plus description substring.
var categoryKeywords = map[string][]string{
	"clothing":    {"shirt", "jeans", "dress", "top", "pants", "jacket"},
	"shoes":       {"sneaker", "boot", "sandal", "heel"},
	"accessories": {"bag", "hat", "scarf", "jewelry"},
}

// BuildPredicate translates the raw listing parameters into a predicate tree.
// Absent parameters contribute nothing; with no parameters at all the result
// matches the whole catalog.
func BuildPredicate(q domain.CatalogQuery) domain.Predicate {
	var clauses []domain.Predicate

	if search := strings.TrimSpace(q.Search); search != "" {
		clauses = append(clauses, domain.Or{Preds: []domain.Predicate{
			domain.Contains{Field: domain.FieldName, Value: search},
			domain.Contains{Field: domain.FieldDescription, Value: search},
		}})
	}

	if category := strings.TrimSpace(q.Category); category != "" {
		clauses = append(clauses, categoryClause(category))
	}

	if pred, ok := priceClause(q.MinPrice, q.MaxPrice); ok {
		clauses = append(clauses, pred)
	}

	if brand := strings.TrimSpace(q.Brand); brand != "" {
		clauses = append(clauses, domain.Equals{Field: domain.FieldBrand, Value: brand, Fold: true})
	}

	if color := strings.TrimSpace(q.Color); color != "" {
		clauses = append(clauses, domain.HasColor{Value: color})
	}

	switch len(clauses) {
	case 0:
		return domain.All{}
	case 1:
		return clauses[0]
	default:
		return domain.And{Preds: clauses}
	}
}

func categoryClause(category string) domain.Predicate {
	preds := []domain.Predicate{
		domain.Equals{Field: domain.FieldCategory, Value: category, Fold: true},
		domain.Contains{Field: domain.FieldDescription, Value: category},
	}

	for _, keyword := range categoryKeywords[strings.ToLower(category)] {
		preds = append(preds, domain.Contains{Field: domain.FieldCategory, Value: keyword})
	}

	return domain.Or{Preds: preds}
}

// priceClause applies the default bounds and clamps out-of-range values back
// into [0, 50000] instead of rejecting them.
func priceClause(min, max *decimal.Decimal) (domain.Predicate, bool) {
	if min == nil && max == nil {
		return nil, false
	}

	lo := priceFloor
	if min != nil {
		lo = clampPrice(*min)
	}

	hi := priceCeiling
	if max != nil {
		hi = clampPrice(*max)
	}

	return domain.PriceBetween{Min: lo, Max: hi}, true
}

func clampPrice(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(priceFloor) {
		return priceFloor
	}
	if v.GreaterThan(priceCeiling) {
		return priceCeiling
	}
	return v
}

// BuildOrder maps the sort key to an ordering. Unrecognized keys fall back to
// newest-first. The trailing id sort keeps ordering deterministic when the
// primary key ties, otherwise rows can swap between page requests.
func BuildOrder(sort string) []domain.OrderBy {
	switch sort {
	case domain.SortPriceAsc:
		return []domain.OrderBy{
			{Field: domain.FieldPrice},
			{Field: domain.FieldID},
		}
	case domain.SortPriceDesc:
		return []domain.OrderBy{
			{Field: domain.FieldPrice, Desc: true},
			{Field: domain.FieldID},
		}
	default:
		return []domain.OrderBy{
			{Field: domain.FieldCreatedAt, Desc: true},
			{Field: domain.FieldID},
		}
	}
}

// NormalizePage treats anything below 1 as the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
