package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Dimensions are in centimetres; every side must be >= 0.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Validate rejects negative or non-finite sides.
func (d Dimensions) Validate() error {
	sides := []struct {
		name  string
		value float64
	}{{"length", d.Length}, {"width", d.Width}, {"height", d.Height}}

	var errList []error
	for _, side := range sides {
		if side.value < 0 || math.IsNaN(side.value) || math.IsInf(side.value, 0) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"dimensions "+side.name,
				fmt.Errorf("%v is not a finite value >= 0", side.value),
			))
		}
	}
	return errors.Join(errList...)
}

// Volume in cubic centimetres.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// Product is the shipped good as declared by the seller.
type Product struct {
	name       string
	category   string
	weightKg   float64
	dimensions *Dimensions
	value      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewProduct validates name, category, a positive weight, a positive declared
// value and, when given, the dimensions. All violations are reported together.
func NewProduct(
	name, category string,
	weightKg float64,
	dimensions *Dimensions,
	value decimal.Decimal,
) (Product, error) {
	p := Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setName(name),
		p.setCategory(category),
		p.setWeight(weightKg),
		p.setDimensions(dimensions),
		p.setValue(value),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) Name() string           { return p.name }
func (p Product) Category() string       { return p.category }
func (p Product) WeightKg() float64      { return p.weightKg }
func (p Product) Value() decimal.Decimal { return p.value }

// Dimensions returns a copy, or nil when none were declared.
func (p Product) Dimensions() *Dimensions {
	if p.dimensions == nil {
		return nil
	}
	d := *p.dimensions
	return &d
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("product category")
	}
	p.category = category
	return nil
}

func (p *Product) setWeight(weightKg float64) error {
	if !(weightKg > 0) || math.IsInf(weightKg, 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Product) setDimensions(dimensions *Dimensions) error {
	if dimensions == nil {
		return nil
	}
	if err := dimensions.Validate(); err != nil {
		return err
	}
	d := *dimensions
	p.dimensions = &d
	return nil
}

func (p *Product) setValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("product value", fmt.Errorf("%s is not greater than 0", value))
	}
	p.value = value
	return nil
}
