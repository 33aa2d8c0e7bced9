package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"clovermarket/domain"
)

// column whitelist; predicates never carry raw column names into SQL.
var productColumns = map[domain.Field]string{
	domain.FieldID:          "id",
	domain.FieldName:        "name",
	domain.FieldDescription: "description",
	domain.FieldPrice:       "price",
	domain.FieldCategory:    "category",
	domain.FieldBrand:       "brand",
	domain.FieldColors:      "colors",
	domain.FieldStatus:      "status",
	domain.FieldCreatedAt:   "created_at",
}

// predicateSQL renders a predicate tree into a parameterized WHERE fragment.
func predicateSQL(pred domain.Predicate) (string, []any, error) {
	switch p := pred.(type) {
	case domain.All:
		return "1=1", nil, nil

	case domain.And:
		return joinSQL(p.Preds, " AND ")

	case domain.Or:
		return joinSQL(p.Preds, " OR ")

	case domain.Contains:
		column, err := columnFor(p.Field)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s ILIKE ?", column), []any{"%" + escapeLike(p.Value) + "%"}, nil

	case domain.Equals:
		column, err := columnFor(p.Field)
		if err != nil {
			return "", nil, err
		}
		if p.Fold {
			return fmt.Sprintf("LOWER(%s) = LOWER(?)", column), []any{p.Value}, nil
		}
		return fmt.Sprintf("%s = ?", column), []any{p.Value}, nil

	case domain.PriceBetween:
		return "price >= ? AND price <= ?", []any{p.Min, p.Max}, nil

	case domain.HasColor:
		member, err := json.Marshal([]string{p.Value})
		if err != nil {
			return "", nil, fmt.Errorf("failed to encode color filter: %w", err)
		}
		return "colors @> ?", []any{string(member)}, nil

	default:
		return "", nil, fmt.Errorf("unsupported predicate type %T", pred)
	}
}

func joinSQL(preds []domain.Predicate, sep string) (string, []any, error) {
	if len(preds) == 0 {
		return "1=1", nil, nil
	}

	parts := make([]string, 0, len(preds))
	var args []any
	for _, pred := range preds {
		sql, predArgs, err := predicateSQL(pred)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, "("+sql+")")
		args = append(args, predArgs...)
	}

	return strings.Join(parts, sep), args, nil
}

func orderSQL(order []domain.OrderBy) (string, error) {
	if len(order) == 0 {
		return "id ASC", nil
	}

	parts := make([]string, 0, len(order))
	for _, o := range order {
		column, err := columnFor(o.Field)
		if err != nil {
			return "", err
		}
		direction := "ASC"
		if o.Desc {
			direction = "DESC"
		}
		parts = append(parts, column+" "+direction)
	}

	return strings.Join(parts, ", "), nil
}

func columnFor(field domain.Field) (string, error) {
	column, ok := productColumns[field]
	if !ok {
		return "", fmt.Errorf("unknown product field %q", field)
	}
	return column, nil
}

// escapeLike neutralizes LIKE metacharacters in user input.
func escapeLike(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(v)
}
