package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned by Validate for a zero Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a postal address used as a shipment's origin or destination.
// Street and city are mandatory; state, zip code and country are optional
// because not every region uses them.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string

	guard guard.ConstructorGuard
}

// NewAddress trims every component and validates the mandatory ones.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	a := Address{
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		zipCode: strings.TrimSpace(zipCode),
		country: strings.TrimSpace(country),
		guard:   guard.NewConstructorGuard(),
	}

	var errStreet, errCity error
	if a.street == "" {
		errStreet = errs.NewValueIsRequiredError("street")
	}
	if a.city == "" {
		errCity = errs.NewValueIsRequiredError("city")
	}
	if err := errors.Join(errStreet, errCity); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate fails for an Address that did not come from NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) ZipCode() string { return a.zipCode }
func (a Address) Country() string { return a.country }

// IsEqual compares all components.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.zipCode == other.zipCode &&
		a.country == other.country
}

// String renders the non-empty components comma separated.
func (a Address) String() string {
	parts := make([]string, 0, 4)
	parts = append(parts, a.street, a.city)
	if region := strings.TrimSpace(fmt.Sprintf("%s %s", a.state, a.zipCode)); region != "" {
		parts = append(parts, region)
	}
	if a.country != "" {
		parts = append(parts, a.country)
	}
	return strings.Join(parts, ", ")
}
