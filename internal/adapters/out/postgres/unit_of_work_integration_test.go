package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	seq       int
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction, "Rollback after commit is a no-op error")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	o := suite.newOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	inTx, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), inTx.ID())

	suite.Require().NoError(uow.Commit(ctx))

	persisted, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.OrderNumber(), persisted.OrderNumber())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	o := suite.newOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WritesCommitTogether() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	first := suite.newOrder()
	second := suite.newOrder()
	courierID := kernel.NewUUID()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, second))
	suite.Require().NoError(first.AssignCourier(courierID, "seller-1", first.CreatedAt().Add(time.Minute)))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, first))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, second.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Uncommitted writes must stay invisible")

	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create().OrderRepository()
	restored, err := reader.Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restored.CourierID())
	suite.True(courierID.IsEqual(*restored.CourierID()))
	suite.Equal(int64(2), restored.Version())

	_, err = reader.Get(ctx, second.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := suite.T().Context()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := suite.newOrder()
	order2 := suite.newOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	repo := suite.factory.Create().OrderRepository()
	_, err = repo.Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = repo.Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_LostUpdateIsDetected runs two load-modify-save cycles over
// the same order; the later save must fail instead of overwriting.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LostUpdateIsDetected() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	loaded1, err := uow1.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	loaded2, err := uow2.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	at := o.CreatedAt().Add(time.Hour)
	suite.Require().NoError(loaded1.ChangeStatus(order.PermissivePolicy(), order.Confirmed, "", "", "", at))
	suite.Require().NoError(uow1.OrderRepository().Update(ctx, loaded1))
	suite.Require().NoError(uow1.Commit(ctx))

	suite.Require().NoError(loaded2.ChangeStatus(order.PermissivePolicy(), order.Cancelled, "", "", "", at))
	err = uow2.OrderRepository().Update(ctx, loaded2)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Require().NoError(uow2.Rollback(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, stored.Status())
	suite.Equal(int64(2), stored.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	o := suite.newOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), retrieved.ID())
}

// newOrder creates a valid order with unique identifiers.
func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	suite.seq++
	suffix := fmt.Sprintf("UOW%05d", suite.seq)
	at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	from, err := kernel.NewAddress("1 Dock Rd", "Oakland", "", "", "")
	suite.Require().NoError(err)
	to, err := kernel.NewAddress("8 Hill St", "Reno", "", "", "")
	suite.Require().NoError(err)
	product, err := order.NewProduct("Bike helmet", "Sports", 0.8, nil, decimal.NewFromInt(40))
	suite.Require().NoError(err)
	shipping, err := order.NewShipping(from, to, "Express", "TRK-"+suffix, at.Add(48*time.Hour))
	suite.Require().NoError(err)
	pricing, err := order.NewPricing(decimal.NewFromInt(40), decimal.NewFromInt(14))
	suite.Require().NoError(err)

	o, err := order.NewOrder("ORD-"+suffix, kernel.NewUUID(), nil, product, shipping, pricing, at)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
