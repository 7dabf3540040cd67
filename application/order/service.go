/*
Package order is the application layer for the order subdomain. It
resolves the customer and product collaborators by id, builds the
aggregate through its validating constructor and delegates persistence
to the repository.
*/
package order

import (
	"context"

	"storefront/domain/customer"
	"storefront/domain/order"
	"storefront/domain/product"

	"github.com/google/uuid"
)

type ApplicationService struct {
	orderRepo    order.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
}

func NewApplicationService(
	orderRepo order.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
) *ApplicationService {
	return &ApplicationService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" binding:"required"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Items      []OrderItemResponse `json:"items"`
	Total      float64             `json:"total"`
}

type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type ChangeCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

// CreateOrder checks the customer exists, snapshots each product's name
// and price into an order item and persists the new aggregate
// atomically.
func (s *ApplicationService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.customerRepo.Find(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		p, err := s.productRepo.Find(ctx, itemReq.ProductID)
		if err != nil {
			return nil, err
		}
		item, err := order.NewOrderItem(uuid.New().String(), p.Name(), p.Price(), p.ID(), itemReq.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(uuid.New().String(), req.CustomerID, items)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

func (s *ApplicationService) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	o, err := s.orderRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

func (s *ApplicationService) ListOrders(ctx context.Context) ([]*OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses, nil
}

// ChangeOrderCustomer reassigns an order to another existing customer.
// Only the customer association is persisted; see the repository's
// Update contract.
func (s *ApplicationService) ChangeOrderCustomer(ctx context.Context, orderID string, req ChangeCustomerRequest) (*OrderResponse, error) {
	if _, err := s.customerRepo.Find(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	o, err := s.orderRepo.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := o.ChangeCustomer(req.CustomerID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := o.Items()
	itemResponses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = OrderItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			LineTotal: item.LineTotal(),
		}
	}
	return &OrderResponse{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      itemResponses,
		Total:      o.Total(),
	}
}
