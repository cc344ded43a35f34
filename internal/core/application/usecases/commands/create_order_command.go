package commands

import (
	"errors"
	"fmt"
	"math"
	"net/mail"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultCourierService is used when the request names none.
const DefaultCourierService = "Standard"

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ProductInput is the product as declared in a creation request.
type ProductInput struct {
	Name       string
	Category   string
	WeightKg   float64
	Dimensions *order.Dimensions
	Value      decimal.Decimal
}

// CreateOrderCommand represents a seller's request to ship a product to a buyer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(sellerID, commands.ProductInput{
//	    Name: "Desk lamp", Category: "Home", WeightKg: 2, Value: decimal.NewFromInt(50),
//	}, from, to, "Express", "buyer@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	sellerID       kernel.UUID
	product        ProductInput
	from           kernel.Address
	to             kernel.Address
	courierService string
	buyerEmail     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that the weight and value are positive and
// both addresses are present. The buyer email is optional.
func NewCreateOrderCommand(
	sellerID kernel.UUID,
	product ProductInput,
	from, to kernel.Address,
	courierService, buyerEmail string,
) (CreateOrderCommand, error) {
	c := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setSellerID(sellerID),
		c.setProduct(product),
		c.setFrom(from),
		c.setTo(to),
		c.setCourierService(courierService),
		c.setBuyerEmail(buyerEmail),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) SellerID() kernel.UUID  { return c.sellerID }
func (c CreateOrderCommand) Product() ProductInput  { return c.product }
func (c CreateOrderCommand) From() kernel.Address   { return c.from }
func (c CreateOrderCommand) To() kernel.Address     { return c.to }
func (c CreateOrderCommand) CourierService() string { return c.courierService }

// BuyerEmail is empty when the request did not name a buyer.
func (c CreateOrderCommand) BuyerEmail() string { return c.buyerEmail }

func (c *CreateOrderCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("seller id")
	}
	c.sellerID = sellerID
	return nil
}

func (c *CreateOrderCommand) setProduct(p ProductInput) error {
	var errList []error
	if strings.TrimSpace(p.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product name"))
	}
	if strings.TrimSpace(p.Category) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product category"))
	}
	if !(p.WeightKg > 0) || math.IsInf(p.WeightKg, 0) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", p.WeightKg)))
	}
	if !p.Value.IsPositive() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"product value", fmt.Errorf("%s is not greater than 0", p.Value)))
	}
	if p.Dimensions != nil {
		errList = append(errList, p.Dimensions.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.product = p
	if p.Dimensions != nil {
		d := *p.Dimensions
		c.product.Dimensions = &d
	}
	return nil
}

func (c *CreateOrderCommand) setFrom(from kernel.Address) error {
	if from.Validate() != nil {
		return errs.NewValueIsRequiredError("from address")
	}
	c.from = from
	return nil
}

func (c *CreateOrderCommand) setTo(to kernel.Address) error {
	if to.Validate() != nil {
		return errs.NewValueIsRequiredError("to address")
	}
	c.to = to
	return nil
}

func (c *CreateOrderCommand) setCourierService(courierService string) error {
	courierService = strings.TrimSpace(courierService)
	if courierService == "" {
		courierService = DefaultCourierService
	}
	c.courierService = courierService
	return nil
}

func (c *CreateOrderCommand) setBuyerEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyer email", err)
	}
	c.buyerEmail = strings.ToLower(addr.Address)
	return nil
}
