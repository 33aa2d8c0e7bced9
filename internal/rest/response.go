package rest

import (
	"time"

	"clovermarket/domain"

	"github.com/google/uuid"
)

type ResponseError struct {
	Message string `json:"message"`
}

// ProductResponse is the boundary form of a product: price as a plain decimal
// string, timestamps as RFC3339. No storage wrapper types cross this line.
type ProductResponse struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price"`
	Category    string   `json:"category,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Stock       int      `json:"stock"`
	Status      string   `json:"status"`
	Images      []string `json:"images,omitempty"`
	StoreID     string   `json:"store_id,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

type ProductPageResponse struct {
	Products    []ProductResponse `json:"products"`
	Total       int64             `json:"total"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
}

func toProductResponse(p domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Category:    p.Category,
		Brand:       p.Brand,
		Colors:      p.Colors,
		Stock:       p.Stock,
		Status:      p.Status,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}

	if p.StoreID != uuid.Nil {
		resp.StoreID = p.StoreID.String()
	}

	return resp
}

func toProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	return responses
}

func toProductPageResponse(page domain.ProductPage) ProductPageResponse {
	return ProductPageResponse{
		Products:    toProductResponses(page.Products),
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	}
}
