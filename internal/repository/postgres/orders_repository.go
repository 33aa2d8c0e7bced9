package postgres

import (
	"context"
	"fmt"

	"clovermarket/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// FindOrdersContainingProduct returns the most recent orders holding at least
// one item for the product, items preloaded. Orders are read-only here; the
// co-purchase recommender is the only consumer.
func (r *OrdersRepository) FindOrdersContainingProduct(ctx context.Context, productID uint64, limit int) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	matching := r.DB.Model(&domain.OrderItem{}).
		Select("order_id").
		Where("product_id = ?", productID)

	var orders []domain.Order
	err := r.DB.WithContext(ctx).
		Where("id IN (?)", matching).
		Order("created_at DESC").
		Limit(limit).
		Preload("Items").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders for product: %w", err)
	}

	return orders, nil
}
