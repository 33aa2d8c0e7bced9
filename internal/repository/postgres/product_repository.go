package postgres

import (
	"context"
	"errors"
	"fmt"

	"clovermarket/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

// FindPage executes a translated predicate with ordering and pagination.
func (r *ProductRepository) FindPage(ctx context.Context, pred domain.Predicate, order []domain.OrderBy, limit, offset int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	where, args, err := predicateSQL(pred)
	if err != nil {
		return nil, fmt.Errorf("failed to build product query: %w", err)
	}

	ordering, err := orderSQL(order)
	if err != nil {
		return nil, fmt.Errorf("failed to build product ordering: %w", err)
	}

	var products []domain.Product
	err = r.DB.WithContext(ctx).
		Where(where, args...).
		Order(ordering).
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context, pred domain.Predicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	where, args, err := predicateSQL(pred)
	if err != nil {
		return 0, fmt.Errorf("failed to build product count query: %w", err)
	}

	var total int64
	err = r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Where(where, args...).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return total, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product

	err := r.DB.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// FindActivePool loads the bounded scoring candidate pool: active products
// except the reference, in id order so pool order is stable across calls.
func (r *ProductRepository) FindActivePool(ctx context.Context, excludeID uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Where("status = ? AND id <> ?", domain.ProductStatusActive, excludeID).
		Order("id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindActiveByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Where("status = ? AND id IN ?", domain.ProductStatusActive, ids).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products by ids: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindActiveByCategory(ctx context.Context, category string, excludeID uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Where("status = ? AND LOWER(category) = LOWER(?) AND id <> ?", domain.ProductStatusActive, category, excludeID).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products by category: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category":    product.Category,
		"brand":       product.Brand,
		"colors":      product.Colors,
		"stock":       product.Stock,
		"status":      product.Status,
		"images":      product.Images,
		"store_id":    product.StoreID,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", product.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// FilterMetadata aggregates the sidebar filter data in three cheap queries.
func (r *ProductRepository) FilterMetadata(ctx context.Context) (domain.FilterMetadata, error) {
	if err := ctx.Err(); err != nil {
		return domain.FilterMetadata{}, fmt.Errorf("context error: %w", err)
	}

	var categories []string
	err := r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return domain.FilterMetadata{}, fmt.Errorf("failed to load categories: %w", err)
	}

	var bounds struct {
		MinPrice decimal.Decimal
		MaxPrice decimal.Decimal
	}
	err = r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Select("COALESCE(MIN(price), 0) AS min_price, COALESCE(MAX(price), 0) AS max_price").
		Scan(&bounds).Error
	if err != nil {
		return domain.FilterMetadata{}, fmt.Errorf("failed to load price range: %w", err)
	}

	var inStock, outOfStock int64
	err = r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Where("stock > 0").
		Count(&inStock).Error
	if err != nil {
		return domain.FilterMetadata{}, fmt.Errorf("failed to count in-stock products: %w", err)
	}

	err = r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Where("stock = 0").
		Count(&outOfStock).Error
	if err != nil {
		return domain.FilterMetadata{}, fmt.Errorf("failed to count out-of-stock products: %w", err)
	}

	return domain.FilterMetadata{
		Categories: categories,
		MinPrice:   bounds.MinPrice,
		MaxPrice:   bounds.MaxPrice,
		InStock:    inStock,
		OutOfStock: outOfStock,
	}, nil
}
