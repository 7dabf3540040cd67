package po

import (
	"storefront/domain/customer"
)

// CustomerPO is the persisted customer row with the address flattened
// into columns.
type CustomerPO struct {
	ID           string `gorm:"primaryKey;size:64"`
	Name         string `gorm:"size:255;not null"`
	Street       string `gorm:"size:255"`
	Number       int
	Zip          string `gorm:"size:32"`
	City         string `gorm:"size:255"`
	HasAddress   bool   `gorm:"not null"`
	Active       bool   `gorm:"not null"`
	RewardPoints int    `gorm:"not null"`
}

func (CustomerPO) TableName() string {
	return "customers"
}

func FromCustomerDomain(c *customer.Customer) *CustomerPO {
	addr := c.Address()
	return &CustomerPO{
		ID:           c.ID(),
		Name:         c.Name(),
		Street:       addr.Street(),
		Number:       addr.Number(),
		Zip:          addr.Zip(),
		City:         addr.City(),
		HasAddress:   c.HasAddress(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
}

// ToDomain rebuilds the aggregate without re-raising its creation event.
func (p *CustomerPO) ToDomain() (*customer.Customer, error) {
	var addr customer.Address
	if p.HasAddress {
		var err error
		addr, err = customer.NewAddress(p.Street, p.Number, p.Zip, p.City)
		if err != nil {
			return nil, err
		}
	}
	return customer.RebuildFromDTO(customer.ReconstructionDTO{
		ID:           p.ID,
		Name:         p.Name,
		Address:      addr,
		HasAddress:   p.HasAddress,
		Active:       p.Active,
		RewardPoints: p.RewardPoints,
	}), nil
}
