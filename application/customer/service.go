/*
Package customer is the application layer for the customer subdomain:
it orchestrates the aggregate, its repository and the event dispatcher.

Event flow: the aggregate buffers events while it changes state; after
the repository call succeeds the service pulls them and hands each to
the dispatcher. Handler failures are logged and dropped — a notification
problem never undoes or fails the state change that caused it.
*/
package customer

import (
	"context"

	"storefront/domain/customer"
	"storefront/domain/shared"
	"storefront/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationService struct {
	repo       customer.Repository
	dispatcher *shared.EventDispatcher
}

func NewApplicationService(repo customer.Repository, dispatcher *shared.EventDispatcher) *ApplicationService {
	return &ApplicationService{repo: repo, dispatcher: dispatcher}
}

type AddressRequest struct {
	Street string `json:"street" binding:"required"`
	Number int    `json:"number"`
	Zip    string `json:"zip" binding:"required"`
	City   string `json:"city" binding:"required"`
}

type CreateCustomerRequest struct {
	ID      string          `json:"id"`
	Name    string          `json:"name" binding:"required"`
	Address *AddressRequest `json:"address"`
}

type CustomerResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Address      *AddressResponse `json:"address,omitempty"`
	Active       bool             `json:"active"`
	RewardPoints int              `json:"reward_points"`
}

type AddressResponse struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

// CreateCustomer builds the aggregate, persists it and dispatches the
// buffered events.
func (s *ApplicationService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	c, err := customer.NewCustomer(id, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Address != nil {
		addr, err := customer.NewAddress(req.Address.Street, req.Address.Number, req.Address.Zip, req.Address.City)
		if err != nil {
			return nil, err
		}
		if err := c.ChangeAddress(addr); err != nil {
			return nil, err
		}
		if err := c.Activate(); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.dispatch(c.PullEvents())
	return toCustomerResponse(c), nil
}

// ChangeAddress updates the customer's address and dispatches the
// resulting event to the registered notification handlers.
func (s *ApplicationService) ChangeAddress(ctx context.Context, customerID string, req AddressRequest) (*CustomerResponse, error) {
	c, err := s.repo.Find(ctx, customerID)
	if err != nil {
		return nil, err
	}

	addr, err := customer.NewAddress(req.Street, req.Number, req.Zip, req.City)
	if err != nil {
		return nil, err
	}
	if err := c.ChangeAddress(addr); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.dispatch(c.PullEvents())
	return toCustomerResponse(c), nil
}

func (s *ApplicationService) GetCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	c, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (s *ApplicationService) ListCustomers(ctx context.Context) ([]*CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = toCustomerResponse(c)
	}
	return responses, nil
}

func (s *ApplicationService) dispatch(events []shared.DomainEvent) {
	for _, event := range events {
		if err := s.dispatcher.Notify(event); err != nil {
			logger.Warn("event handler failure",
				zap.String("event", event.EventName()),
				zap.String("aggregate_id", event.AggregateID()),
				zap.Error(err))
		}
	}
}

func toCustomerResponse(c *customer.Customer) *CustomerResponse {
	resp := &CustomerResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
	if c.HasAddress() {
		addr := c.Address()
		resp.Address = &AddressResponse{
			Street: addr.Street(),
			Number: addr.Number(),
			Zip:    addr.Zip(),
			City:   addr.City(),
		}
	}
	return resp
}
