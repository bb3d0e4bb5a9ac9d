package startup

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Ramsey-B/juniper/config"
	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/events"
	"github.com/Ramsey-B/juniper/pkg/kafka"
	"github.com/Ramsey-B/juniper/pkg/redis"
	"github.com/Ramsey-B/juniper/pkg/tracing"
	"github.com/Ramsey-B/juniper/pkg/tracing/exporters"
)

// PostgresDependency opens the connection pool and runs migrations before
// exposing the wrapped DB.
type PostgresDependency struct {
	cfg    *config.Config
	logger ectologger.Logger
	pool   *sqlx.DB
	db     database.DB
}

func NewPostgresDependency(cfg *config.Config, logger ectologger.Logger) *PostgresDependency {
	return &PostgresDependency{cfg: cfg, logger: logger}
}

func (d *PostgresDependency) GetName() string     { return "postgres" }
func (d *PostgresDependency) DependsOn() []string { return nil }

func (d *PostgresDependency) Start(ctx context.Context) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.cfg.DatabaseHost, d.cfg.DatabasePort, d.cfg.DatabaseUserName,
		d.cfg.DatabasePassword, d.cfg.DatabaseName, d.cfg.DatabaseSSLMode)

	pool, err := sqlx.ConnectContext(ctx, d.cfg.DatabaseDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	pool.SetMaxOpenConns(d.cfg.DatabaseMaxOpenConns)
	pool.SetMaxIdleConns(d.cfg.DatabaseMaxIdleConns)
	pool.SetConnMaxLifetime(d.cfg.DatabaseConnMaxLifetime)

	driver, err := migratepg.WithInstance(pool.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	ms := database.NewMigrationService(d.logger, &database.MigrationConfig{
		MigrationFolderPath: d.cfg.DatabaseMigrationFolderPath,
		Version:             uint(d.cfg.DatabaseMigrationVersion),
		Force:               d.cfg.DatabaseMigrationForce,
	})
	if err := ms.Migrate(d.cfg.DatabaseName, driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.pool = pool
	d.db = database.NewDatabaseInstance(pool, d.logger)
	return nil
}

func (d *PostgresDependency) Stop(ctx context.Context) error {
	if d.pool == nil {
		return nil
	}
	return d.pool.Close()
}

// DB returns the wrapped database once Start has succeeded.
func (d *PostgresDependency) DB() database.DB { return d.db }

// RedisDependency connects the lock client. When Redis is disabled the
// dependency starts as a no-op and Client/Locker return nil, which downstream
// consumers treat as "no cross-process locking".
type RedisDependency struct {
	cfg    *config.Config
	logger ectologger.Logger
	client *redis.Client
}

func NewRedisDependency(cfg *config.Config, logger ectologger.Logger) *RedisDependency {
	return &RedisDependency{cfg: cfg, logger: logger}
}

func (d *RedisDependency) GetName() string     { return "redis" }
func (d *RedisDependency) DependsOn() []string { return nil }

func (d *RedisDependency) Start(ctx context.Context) error {
	if !d.cfg.RedisEnabled {
		d.logger.Info("Redis disabled, schedule generation will run without distributed locks")
		return nil
	}

	client, err := redis.NewClient(redis.Config{
		Host:     d.cfg.RedisHost,
		Port:     d.cfg.RedisPort,
		Password: d.cfg.RedisPassword,
		DB:       d.cfg.RedisDB,
	}, d.logger)
	if err != nil {
		return err
	}
	d.client = client
	return nil
}

func (d *RedisDependency) Stop(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	return d.client.Close()
}

func (d *RedisDependency) Client() *redis.Client { return d.client }

// Locker returns a schedule-generation locker, or nil when Redis is disabled.
func (d *RedisDependency) Locker() *redis.Locker {
	if d.client == nil {
		return nil
	}
	return redis.NewLocker(d.client, "juniper:lock:")
}

// KafkaDependency builds the component event emitter. A disabled broker
// yields the no-op emitter rather than an error.
type KafkaDependency struct {
	cfg      *config.Config
	logger   ectologger.Logger
	producer *kafka.Producer
	emitter  events.Emitter
}

func NewKafkaDependency(cfg *config.Config, logger ectologger.Logger) *KafkaDependency {
	return &KafkaDependency{cfg: cfg, logger: logger, emitter: events.NopEmitter{}}
}

func (d *KafkaDependency) GetName() string     { return "kafka" }
func (d *KafkaDependency) DependsOn() []string { return nil }

func (d *KafkaDependency) Start(ctx context.Context) error {
	if !d.cfg.KafkaEnabled {
		d.logger.Info("Kafka disabled, component events will not be published")
		return nil
	}

	d.producer = kafka.NewProducer(kafka.ProducerConfig{
		Brokers:      d.cfg.KafkaBrokers,
		Topic:        d.cfg.KafkaOutputTopic,
		BatchSize:    d.cfg.KafkaBatchSize,
		BatchTimeout: time.Duration(d.cfg.KafkaBatchTimeout) * time.Millisecond,
		RequiredAcks: d.cfg.KafkaRequiredAcks,
		Compression:  d.cfg.KafkaCompression,
	}, d.logger)
	d.emitter = events.NewKafkaEmitter(d.producer, d.logger)
	return nil
}

func (d *KafkaDependency) Stop(ctx context.Context) error {
	if d.producer == nil {
		return nil
	}
	return d.producer.Close()
}

func (d *KafkaDependency) Emitter() events.Emitter { return d.emitter }

// TracingDependency initializes the OTLP trace pipeline.
type TracingDependency struct {
	cfg      *config.Config
	logger   ectologger.Logger
	provider *sdktrace.TracerProvider
}

func NewTracingDependency(cfg *config.Config, logger ectologger.Logger) *TracingDependency {
	return &TracingDependency{cfg: cfg, logger: logger}
}

func (d *TracingDependency) GetName() string     { return "tracing" }
func (d *TracingDependency) DependsOn() []string { return nil }

func (d *TracingDependency) Start(ctx context.Context) error {
	if !d.cfg.TracingEnabled {
		return nil
	}

	exporter, err := exporters.NewOTLPExporter(ctx, exporters.OTLPConfig{
		Endpoint: d.cfg.TracingEndpoint,
		Protocol: d.cfg.TracingProtocol,
		Insecure: true,
		Timeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	d.provider = tracing.Init(d.cfg.AppName, exporter)
	return nil
}

func (d *TracingDependency) Stop(ctx context.Context) error {
	if d.provider == nil {
		return nil
	}
	return d.provider.Shutdown(ctx)
}
