package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() commands.ProductInput {
	return commands.ProductInput{
		Name:       "Desk lamp",
		Category:   "Home",
		WeightKg:   2,
		Dimensions: &order.Dimensions{Length: 30, Width: 20, Height: 45},
		Value:      decimal.NewFromInt(50),
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	seller := kernel.NewUUID()
	from, to := newAddress(t, "1 Seller Way"), newAddress(t, "9 Buyer Road")

	cmd, err := commands.NewCreateOrderCommand(seller, validProduct(), from, to, "", " Buyer@Example.com ")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, seller, cmd.SellerID())
	assert.Equal(t, commands.DefaultCourierService, cmd.CourierService())
	assert.Equal(t, "buyer@example.com", cmd.BuyerEmail())
	assert.True(t, cmd.From().IsEqual(from))
	assert.True(t, cmd.To().IsEqual(to))
}

func TestNewCreateOrderCommand_RandomValidRequests(t *testing.T) {
	for range 25 {
		from, err := kernel.NewAddress(gofakeit.Street(), gofakeit.City(), gofakeit.StateAbr(), gofakeit.Zip(), "US")
		require.NoError(t, err)
		to, err := kernel.NewAddress(gofakeit.Street(), gofakeit.City(), gofakeit.StateAbr(), gofakeit.Zip(), "US")
		require.NoError(t, err)

		product := commands.ProductInput{
			Name:     gofakeit.ProductName(),
			Category: gofakeit.ProductCategory(),
			WeightKg: gofakeit.Float64Range(0.1, 40),
			Value:    decimal.NewFromFloat(gofakeit.Price(1, 2000)),
		}

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), product, from, to, "Express", gofakeit.Email())
		require.NoError(t, err)
	}
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	product := validProduct()
	product.WeightKg = 0
	product.Value = decimal.NewFromInt(-5)
	product.Name = ""

	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, product, kernel.Address{}, kernel.Address{}, "", "not-an-email")

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	for _, part := range []string{"seller id", "product name", "weight", "product value", "from address", "to address", "buyer email"} {
		assert.Contains(t, err.Error(), part)
	}
}

func TestNewCreateOrderCommand_NegativeDimensions(t *testing.T) {
	product := validProduct()
	product.Dimensions = &order.Dimensions{Width: -1}

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), product,
		newAddress(t, "1 Seller Way"), newAddress(t, "9 Buyer Road"), "", "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
