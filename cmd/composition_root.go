package cmd

import (
	"context"
	stderrors "errors"
	"time"

	httpin "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/kafka"
	"shiptrack/internal/adapters/out/locallock"
	"shiptrack/internal/adapters/out/notifylog"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/adapters/out/postgres/userrepo"
	"shiptrack/internal/adapters/out/redis"
	"shiptrack/internal/core/application/notifications"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/jobs"
	"shiptrack/internal/pkg/logger"
	"shiptrack/internal/pkg/metrics"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// startupTimeout bounds pings and the identifier preload at startup.
const startupTimeout = 10 * time.Second

// OpenDatabase connects to postgres and migrates the schema. Unique index
// violations are translated to gorm.ErrDuplicatedKey.
func OpenDatabase(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	if err := db.WithContext(ctx).AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{}); err != nil {
		return nil, errors.Wrap(err, "migrate")
	}
	return db, nil
}

// CompositionRoot owns the long-lived collaborators and builds handlers on
// top of them.
type CompositionRoot struct {
	cfg     Config
	logger  *zap.Logger
	metrics *metrics.Metrics

	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	users      *userrepo.GormUserRepository
	reader     *orderrepo.GormOrderRepository

	redisClient goredis.UniversalClient
	locker      ports.OrderLocker
	writer      *commands.OrderWriter

	publisher  ports.NotificationPublisher
	closeKafka func() error
	dispatcher *notifications.Dispatcher

	ids        *services.IdentifierGenerator
	calculator services.ShippingCostCalculator
	policy     order.TransitionPolicy
}

func NewCompositionRoot(
	ctx context.Context,
	cfg Config,
	gormDB *gorm.DB,
	l *zap.Logger,
	m *metrics.Metrics,
) (*CompositionRoot, error) {
	calculator, err := services.NewShippingCostCalculator(
		decimal.NewFromFloat(cfg.ShippingBaseRate),
		decimal.NewFromFloat(cfg.ShippingPerKgRate),
	)
	if err != nil {
		return nil, errors.Wrap(err, "shipping rates")
	}

	c := &CompositionRoot{
		cfg:        cfg,
		logger:     l,
		metrics:    m,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		users:      userrepo.NewGormUserRepository(gormDB),
		reader:     orderrepo.NewGormOrderRepository(gormDB),
		ids:        services.NewIdentifierGenerator(),
		calculator: calculator,
		policy:     order.NewTransitionPolicy(cfg.StrictTransitions),
	}

	if err := c.primeIdentifiers(ctx); err != nil {
		return nil, err
	}
	if err := c.initLocker(ctx); err != nil {
		return nil, err
	}
	c.initNotifications()

	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	c.writer = commands.NewOrderWriter(f, c.locker, cfg.StoreTimeout)

	return c, nil
}

// primeIdentifiers feeds stored identifiers to the generator so it avoids
// reissuing them.
func (c *CompositionRoot) primeIdentifiers(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	identifiers, err := c.reader.Identifiers(ctx)
	if err != nil {
		return errors.Wrap(err, "load identifiers")
	}
	c.ids.Remember(identifiers...)
	c.logger.Info("Identifier generator primed", zap.Int("identifiers", len(identifiers)))
	return nil
}

func (c *CompositionRoot) initLocker(ctx context.Context) error {
	if c.cfg.RedisAddr == "" {
		c.locker = locallock.New()
		c.logger.Info("Using in-process order lock")
		return nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     c.cfg.RedisAddr,
		Password: c.cfg.RedisPassword,
		DB:       c.cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return errors.Wrapf(err, "ping redis %s", c.cfg.RedisAddr)
	}

	c.redisClient = client
	c.locker = redis.NewLocker(client, c.cfg.LockTTL, logger.Component(c.logger, "order_lock"))
	c.logger.Info("Using redis order lock", zap.String("addr", c.cfg.RedisAddr))
	return nil
}

func (c *CompositionRoot) initNotifications() {
	if brokers := kafka.ParseBrokers(c.cfg.KafkaBrokers); len(brokers) > 0 {
		p := kafka.NewPublisher(brokers, c.cfg.KafkaNotificationsTopic)
		c.publisher = p
		c.closeKafka = p.Close
		c.logger.Info("Publishing notifications to kafka",
			zap.Strings("brokers", brokers),
			zap.String("topic", c.cfg.KafkaNotificationsTopic),
		)
	} else {
		c.publisher = notifylog.NewPublisher(logger.Component(c.logger, "notifications"))
		c.logger.Info("No kafka brokers configured, notifications are only logged")
	}

	c.dispatcher = notifications.NewDispatcher(
		c.publisher,
		c.cfg.NotificationWorkers,
		c.cfg.NotificationBuffer,
		c.cfg.NotificationTimeout,
		logger.Component(c.logger, "notification_dispatcher"),
		c.metrics,
	)
}

func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.writer, c.users, c.ids, c.calculator, c.cfg.DeliveryLeadTime, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.writer, c.policy, c.users, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateFlagOrderCommandHandler() commands.FlagOrderCommandHandler {
	return commands.NewFlagOrderCommandHandler(c.writer, c.policy, c.logger)
}

func (c *CompositionRoot) CreateAddTrackingEventCommandHandler() commands.AddTrackingEventCommandHandler {
	return commands.NewAddTrackingEventCommandHandler(c.writer, c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.writer, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateGetOrdersForUserQueryHandler() queries.GetOrdersForUserQueryHandler {
	return queries.NewGetOrdersForUserQueryHandler(c.reader, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateGetTrackingViewQueryHandler() queries.GetTrackingViewQueryHandler {
	return queries.NewGetTrackingViewQueryHandler(c.reader, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.reader, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateQuoteQueryHandler() queries.QuoteQueryHandler {
	return queries.NewQuoteQueryHandler(c.calculator)
}

// CreateEcho wires every handler into the HTTP surface.
func (c *CompositionRoot) CreateEcho() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		FlagOrder:         c.CreateFlagOrderCommandHandler(),
		AddTrackingEvent:  c.CreateAddTrackingEventCommandHandler(),
		AssignCourier:     c.CreateAssignCourierCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrdersForUser:  c.CreateGetOrdersForUserQueryHandler(),
		GetTrackingView:   c.CreateGetTrackingViewQueryHandler(),
		GetOrderTimeline:  c.CreateGetOrderTimelineQueryHandler(),
		Quote:             c.CreateQuoteQueryHandler(),
	}, logger.Component(c.logger, "http"), c.metrics)

	return httpin.NewEcho(server, c.metrics, c.logger, c.healthCheck)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOverdueOrdersJob(
			c.CreateGetOverdueOrdersQueryHandler(),
			c.cfg.OverdueScanSchedule,
			c.metrics,
			c.logger,
		),
	)
}

func (c *CompositionRoot) healthCheck(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "postgres")
	}
	if c.redisClient != nil {
		if err := c.redisClient.Ping(ctx).Err(); err != nil {
			return errors.Wrap(err, "redis")
		}
	}
	return nil
}

// Close releases external connections. Call it after the dispatcher stopped.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.closeKafka != nil {
		if err := c.closeKafka(); err != nil {
			errList = append(errList, errors.Wrap(err, "close kafka writer"))
		}
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errList = append(errList, errors.Wrap(err, "close redis"))
		}
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errList = append(errList, errors.Wrap(err, "close database"))
		}
	}
	return stderrors.Join(errList...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
