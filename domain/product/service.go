package product

// DomainService holds product logic that spans more than one entity.
type DomainService struct{}

func NewDomainService() *DomainService {
	return &DomainService{}
}

// IncreasePrice raises the price of every given product by percentage.
// The slice is mutated in place; persisting the change is the caller's
// job.
func (s *DomainService) IncreasePrice(products []*Product, percentage float64) error {
	if percentage < 0 {
		return NewInvalidProductError("percentage must not be negative")
	}
	for _, p := range products {
		if err := p.ChangePrice(p.Price() * (1 + percentage/100)); err != nil {
			return err
		}
	}
	return nil
}
