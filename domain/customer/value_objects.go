package customer

import (
	"fmt"
)

// Address value object. Immutable; replacing a customer's address means
// building a new Address and going through Customer.ChangeAddress.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

func NewAddress(street string, number int, zip, city string) (Address, error) {
	a := Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) Validate() error {
	if a.street == "" {
		return NewInvalidCustomerError("address street is required")
	}
	if a.zip == "" {
		return NewInvalidCustomerError("address zip is required")
	}
	if a.city == "" {
		return NewInvalidCustomerError("address city is required")
	}
	return nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int    { return a.number }
func (a Address) Zip() string    { return a.zip }
func (a Address) City() string   { return a.city }

// String renders the address the way notifications display it.
func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}

// Equals compares by value; addresses have no identity of their own.
func (a Address) Equals(other Address) bool {
	return a == other
}
