package cmd

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Config holds the service configuration. Values come from defaults, an
// optional config.yaml and the environment, the latter winning. A .env file
// in the working directory is loaded into the environment first.
type Config struct {
	HTTPPort string `default:"8080" env:"HTTP_PORT" yaml:"http_port"`

	DBHost     string `env:"DB_HOST" yaml:"db_host"`
	DBPort     string `default:"5432" env:"DB_PORT" yaml:"db_port"`
	DBUser     string `env:"DB_USER" yaml:"db_user"`
	DBPassword string `env:"DB_PASSWORD" yaml:"db_password"`
	DBName     string `env:"DB_NAME" yaml:"db_name"`
	DBSslMode  string `default:"disable" env:"DB_SSLMODE" yaml:"db_sslmode"`

	// An empty RedisAddr selects the in-process lock.
	RedisAddr     string `env:"REDIS_ADDR" yaml:"redis_addr"`
	RedisPassword string `env:"REDIS_PASSWORD" yaml:"redis_password"`
	RedisDB       int    `env:"REDIS_DB" yaml:"redis_db"`

	// Empty KafkaBrokers selects the log-only notification publisher.
	KafkaBrokers            string `env:"KAFKA_BROKERS" yaml:"kafka_brokers"`
	KafkaNotificationsTopic string `default:"order-notifications" env:"KAFKA_NOTIFICATIONS_TOPIC" yaml:"kafka_notifications_topic"`

	LogLevel       string `default:"info" env:"LOG_LEVEL" yaml:"log_level"`
	LogDevelopment bool   `default:"false" env:"LOG_DEVELOPMENT" yaml:"log_development"`

	StoreTimeout      time.Duration `default:"3s" env:"STORE_TIMEOUT" yaml:"store_timeout"`
	LockTTL           time.Duration `default:"10s" env:"LOCK_TTL" yaml:"lock_ttl"`
	DeliveryLeadTime  time.Duration `default:"72h" env:"DELIVERY_LEAD_TIME" yaml:"delivery_lead_time"`
	ShippingBaseRate  float64       `default:"10.0" env:"SHIPPING_BASE_RATE" yaml:"shipping_base_rate"`
	ShippingPerKgRate float64       `default:"5.0" env:"SHIPPING_PER_KG_RATE" yaml:"shipping_per_kg_rate"`
	StrictTransitions bool          `default:"false" env:"STRICT_TRANSITIONS" yaml:"strict_transitions"`

	NotificationWorkers int           `default:"4" env:"NOTIFICATION_WORKERS" yaml:"notification_workers"`
	NotificationBuffer  int           `default:"256" env:"NOTIFICATION_BUFFER" yaml:"notification_buffer"`
	NotificationTimeout time.Duration `default:"5s" env:"NOTIFICATION_TIMEOUT" yaml:"notification_timeout"`

	OverdueScanSchedule string        `default:"0 */5 * * * *" env:"OVERDUE_SCAN_SCHEDULE" yaml:"overdue_scan_schedule"`
	ShutdownTimeout     time.Duration `default:"15s" env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`
}

// LoadConfig reads .env, config.yaml and the environment, then validates.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: true,
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks required keys and that durations, rates and pool sizes are
// positive.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.DBHost) == "" {
		problems = append(problems, "DB_HOST is required")
	}
	if strings.TrimSpace(c.DBName) == "" {
		problems = append(problems, "DB_NAME is required")
	}

	for name, d := range map[string]time.Duration{
		"STORE_TIMEOUT":        c.StoreTimeout,
		"LOCK_TTL":             c.LockTTL,
		"DELIVERY_LEAD_TIME":   c.DeliveryLeadTime,
		"NOTIFICATION_TIMEOUT": c.NotificationTimeout,
		"SHUTDOWN_TIMEOUT":     c.ShutdownTimeout,
	} {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %s", name, d))
		}
	}
	if c.ShippingBaseRate <= 0 {
		problems = append(problems, fmt.Sprintf("SHIPPING_BASE_RATE must be positive, got %v", c.ShippingBaseRate))
	}
	if c.ShippingPerKgRate <= 0 {
		problems = append(problems, fmt.Sprintf("SHIPPING_PER_KG_RATE must be positive, got %v", c.ShippingPerKgRate))
	}
	if c.NotificationWorkers <= 0 {
		problems = append(problems, "NOTIFICATION_WORKERS must be positive")
	}
	if c.NotificationBuffer <= 0 {
		problems = append(problems, "NOTIFICATION_BUFFER must be positive")
	}

	if len(problems) > 0 {
		slices.Sort(problems)
		return errors.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
