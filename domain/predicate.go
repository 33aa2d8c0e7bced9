package domain

import "github.com/shopspring/decimal"

// Field names a queryable Product attribute. Backends map fields to their own
// column/property names; business code never hands raw column strings to a
// repository.
type Field string

const (
	FieldID          Field = "id"
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldPrice       Field = "price"
	FieldCategory    Field = "category"
	FieldBrand       Field = "brand"
	FieldColors      Field = "colors"
	FieldStatus      Field = "status"
	FieldCreatedAt   Field = "created_at"
)

// Predicate is a composable boolean expression over Product fields. It is
// built per request by the filter builder and translated by each storage
// backend (SQL fragments in postgres, direct evaluation in memory).
type Predicate interface {
	pred()
}

// All matches every product. It is the identity element for And: absent
// filter constraints contribute an All instead of being special-cased.
type All struct{}

type And struct {
	Preds []Predicate
}

type Or struct {
	Preds []Predicate
}

// Contains is a case-insensitive substring match on a text field.
type Contains struct {
	Field Field
	Value string
}

// Equals is an equality match on a text field, case-insensitive when Fold is
// set.
type Equals struct {
	Field Field
	Value string
	Fold  bool
}

// PriceBetween is an inclusive price range.
type PriceBetween struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// HasColor matches products listing the color among their colors.
type HasColor struct {
	Value string
}

func (All) pred()          {}
func (And) pred()          {}
func (Or) pred()           {}
func (Contains) pred()     {}
func (Equals) pred()       {}
func (PriceBetween) pred() {}
func (HasColor) pred()     {}

// OrderBy is one ordering term; repositories apply terms in slice order.
type OrderBy struct {
	Field Field
	Desc  bool
}
