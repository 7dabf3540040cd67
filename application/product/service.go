// Package product is the application layer for the product subdomain.
package product

import (
	"context"

	"storefront/domain/product"

	"github.com/google/uuid"
)

type ApplicationService struct {
	repo          product.Repository
	domainService *product.DomainService
}

func NewApplicationService(repo product.Repository) *ApplicationService {
	return &ApplicationService{
		repo:          repo,
		domainService: product.NewDomainService(),
	}
}

type CreateProductRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

type ProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type IncreasePricesRequest struct {
	Percentage float64 `json:"percentage" binding:"required,min=0"`
}

func (s *ApplicationService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	p, err := product.NewProduct(id, req.Name, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (s *ApplicationService) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (s *ApplicationService) ListProducts(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses, nil
}

// IncreasePrices raises every product's price by the given percentage
// and persists each change.
func (s *ApplicationService) IncreasePrices(ctx context.Context, req IncreasePricesRequest) ([]*ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.domainService.IncreasePrice(products, req.Percentage); err != nil {
		return nil, err
	}

	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		if err := s.repo.Update(ctx, p); err != nil {
			return nil, err
		}
		responses[i] = toProductResponse(p)
	}
	return responses, nil
}

func toProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}
