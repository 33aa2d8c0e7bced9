package catalog

import (
	"context"
	"errors"
	"fmt"

	"clovermarket/domain"
	"clovermarket/pkg/logger"

	"github.com/shopspring/decimal"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindPage(ctx context.Context, pred domain.Predicate, order []domain.OrderBy, limit, offset int) ([]domain.Product, error)
	Count(ctx context.Context, pred domain.Predicate) (int64, error)
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
	FilterMetadata(ctx context.Context) (domain.FilterMetadata, error)
}

type catalogService struct {
	catalogRepo CatalogRepository
}

func NewCatalogService(catalogRepo CatalogRepository) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

// GetProducts returns one page of listing results. Store faults degrade to an
// empty slice: the shop grid renders empty rather than erroring.
func (s *catalogService) GetProducts(ctx context.Context, q domain.CatalogQuery) []domain.Product {
	page := s.GetProductsPaged(ctx, q)
	return page.Products
}

// GetProductsPaged runs the full filter/sort/paginate pipeline and returns
// the page together with the total page count.
func (s *catalogService) GetProductsPaged(ctx context.Context, q domain.CatalogQuery) domain.ProductPage {
	page := NormalizePage(q.Page)
	empty := domain.ProductPage{Products: []domain.Product{}, CurrentPage: page}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing products", "error", err)
		return empty
	}

	pred := BuildPredicate(q)
	order := BuildOrder(q.Sort)
	offset := (page - 1) * PageSize

	products, err := s.catalogRepo.FindPage(ctx, pred, order, PageSize, offset)
	if err != nil {
		logger.Error("failed to list products", "error", err)
		return empty
	}

	total, err := s.catalogRepo.Count(ctx, pred)
	if err != nil {
		logger.Error("failed to count products", "error", err)
		return empty
	}

	totalPages := int((total + PageSize - 1) / PageSize)

	return domain.ProductPage{
		Products:    products,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

func (s *catalogService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", "error", err)
		return nil, err
	}

	return &product, nil
}

func (s *catalogService) GetFilterMetadata(ctx context.Context) (domain.FilterMetadata, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get filter metadata", "error", err)
		return domain.FilterMetadata{}, fmt.Errorf("context error: %w", err)
	}

	meta, err := s.catalogRepo.FilterMetadata(ctx)
	if err != nil {
		logger.Error("failed to load filter metadata", "error", err)
		return domain.FilterMetadata{}, err
	}

	return meta, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateProduct(product); err != nil {
		logger.Error("invalid product data", "error", err)
		return nil, err
	}

	if product.Status == "" {
		product.Status = domain.ProductStatusActive
	}

	if err := s.catalogRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created", "product_id", product.ID)

	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		logger.Error("invalid product data: ID is required")
		return nil, errors.New("product ID is required")
	}

	if err := validateProduct(product); err != nil {
		logger.Error("invalid product data", "error", err)
		return nil, err
	}

	if _, err := s.catalogRepo.FindByID(ctx, product.ID); err != nil {
		logger.Error("product not found", "error", err)
		return nil, domain.ErrProductNotFound
	}

	if err := s.catalogRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updated, err := s.catalogRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", "error", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated", "product_id", product.ID)

	return &updated, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid product id when deleting product")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product", "error", err)
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.catalogRepo.FindByID(ctx, id); err != nil {
		logger.Error("product not found", "error", err)
		return domain.ErrProductNotFound
	}

	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted", "product_id", id)

	return nil
}

func validateProduct(product *domain.Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}

	if product.Price.LessThanOrEqual(decimal.Zero) {
		return errors.New("price must be greater than 0")
	}

	if product.Stock < 0 {
		return errors.New("stock cannot be negative")
	}

	return nil
}
