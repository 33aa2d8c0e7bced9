package domain

import "github.com/shopspring/decimal"

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// CatalogQuery carries the raw shop-listing filter parameters. Zero values
// mean "no constraint"; nil price bounds fall back to the builder defaults.
type CatalogQuery struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Brand    string
	Color    string
	Sort     string
	Page     int
}

type ProductPage struct {
	Products    []Product
	Total       int64
	TotalPages  int
	CurrentPage int
}

// FilterMetadata feeds the shop sidebar: available categories, the catalog
// price range and stock availability counts.
type FilterMetadata struct {
	Categories []string        `json:"categories"`
	MinPrice   decimal.Decimal `json:"min_price"`
	MaxPrice   decimal.Decimal `json:"max_price"`
	InStock    int64           `json:"in_stock"`
	OutOfStock int64           `json:"out_of_stock"`
}
