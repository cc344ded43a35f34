package userrepo_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/userrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
	suite.repository = userrepo.NewGormUserRepository(db)
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindUserIDByEmail_IgnoresCase() {
	ctx := suite.T().Context()
	id := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Save(ctx, id, "Jane.Doe@Example.com", "Jane", kernel.RoleBuyer))

	found, ok, err := suite.repository.FindUserIDByEmail(ctx, "  JANE.DOE@example.COM ")

	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal(id, found)
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindUserIDByEmail_Unknown() {
	_, ok, err := suite.repository.FindUserIDByEmail(suite.T().Context(), "nobody@example.com")

	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindEmailByUserID() {
	ctx := suite.T().Context()
	id := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Save(ctx, id, "buyer@example.com", "Buyer", kernel.RoleBuyer))

	email, ok, err := suite.repository.FindEmailByUserID(ctx, id)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal("buyer@example.com", email)

	_, ok, err = suite.repository.FindEmailByUserID(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *UserRepositoryIntegrationTestSuite) TestSave_ReplacesExistingEntry() {
	ctx := suite.T().Context()
	id := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Save(ctx, id, "old@example.com", "Old", kernel.RoleSeller))
	suite.Require().NoError(suite.repository.Save(ctx, id, "new@example.com", "New", kernel.RoleSeller))

	email, ok, err := suite.repository.FindEmailByUserID(ctx, id)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal("new@example.com", email)
}

func (suite *UserRepositoryIntegrationTestSuite) TestSave_RequiresEmail() {
	err := suite.repository.Save(suite.T().Context(), kernel.NewUUID(), "  ", "Nobody", kernel.RoleBuyer)

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *UserRepositoryIntegrationTestSuite) TestFind_CanceledContext() {
	ctx, cancel := context.WithCancel(suite.T().Context())
	cancel()

	_, _, err := suite.repository.FindUserIDByEmail(ctx, "buyer@example.com")

	suite.Require().Error(err)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
