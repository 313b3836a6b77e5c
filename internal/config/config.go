package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Outbox   OutboxConfig   `yaml:"outbox"`
	Cache    CacheConfig    `yaml:"cache"`
	Consumer ConsumerConfig `yaml:"consumer"`
	Payment  PaymentConfig  `yaml:"payment"`
}

type HTTPConfig struct {
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type PostgresConfig struct {
	Port            string        `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	DbName          string        `yaml:"db_name" env:"POSTGRES_DB"`
	User            string        `yaml:"user" env:"POSTGRES_USER"`
	Pwd             string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	SslMode         string        `yaml:"sslmode" env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"30m"`
}

type KafkaConfig struct {
	BrokerList        []string `yaml:"broker_list" env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	OrderCreatedTopic string   `yaml:"order_created_topic" env-default:"order-created"`
	OrderUpdatedTopic string   `yaml:"order_updated_topic" env-default:"order-updated"`
	DeadLetterTopic   string   `yaml:"dead_letter_topic" env-default:"order-events.dlq"`
	ConsumerGroup     string   `yaml:"consumer_group" env-default:"payment-service"`
	ClientID          string   `yaml:"client_id" env-default:"orderflow"`
}

type OutboxConfig struct {
	Interval  time.Duration `yaml:"interval" env-default:"2s"`
	BatchSize int           `yaml:"batch_size" env-default:"100"`

	// RelayOnly disables the publish attempt right after commit; events then
	// leave only through the relay.
	RelayOnly bool `yaml:"relay_only"`
}

type CacheConfig struct {
	Size int           `yaml:"size" env-default:"1024"`
	TTL  time.Duration `yaml:"ttl" env-default:"10m"`
}

type ConsumerConfig struct {
	MaxRetries  int           `yaml:"max_retries" env-default:"3"`
	BackoffBase time.Duration `yaml:"backoff_base" env-default:"250ms"`
	BackoffMax  time.Duration `yaml:"backoff_max" env-default:"10s"`
}

type PaymentConfig struct {
	SuccessProbability float64       `yaml:"success_probability" env-default:"0.9"`
	SettlementDelay    time.Duration `yaml:"settlement_delay" env-default:"2s"`
	Workers            int           `yaml:"workers" env-default:"8"`
	QueueSize          int           `yaml:"queue_size" env-default:"256"`
	Seed               int64         `yaml:"seed" env-default:"0"`
	ReconcileInterval  time.Duration `yaml:"reconcile_interval" env-default:"30s"`
	PendingAfter       time.Duration `yaml:"pending_after" env-default:"5m"`
	ProcessingTimeout  time.Duration `yaml:"processing_timeout" env-default:"5m"`
	ReconcileBatch     int           `yaml:"reconcile_batch" env-default:"100"`
	// DrainTimeout bounds how long shutdown waits for queued settlements
	// before interrupting them.
	DrainTimeout       time.Duration `yaml:"drain_timeout" env-default:"15s"`
}

// QueueWait is the longest a submission can sit in a full settlement queue
// before its own settlement completes.
func (c *PaymentConfig) QueueWait() time.Duration {
	rounds := (c.QueueSize+c.Workers-1)/c.Workers + 1

	return time.Duration(rounds) * c.SettlementDelay
}

func InitConfig() Config {
	configPath := getConfigPath()

	if configPath == "" {
		panic("config path is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func Load(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Payment.SuccessProbability < 0 || c.Payment.SuccessProbability > 1 {
		return fmt.Errorf("payment.success_probability must be within [0, 1], got %v", c.Payment.SuccessProbability)
	}
	if c.Payment.Workers <= 0 {
		return fmt.Errorf("payment.workers must be positive, got %d", c.Payment.Workers)
	}
	if c.Payment.QueueSize <= 0 {
		return fmt.Errorf("payment.queue_size must be positive, got %d", c.Payment.QueueSize)
	}
	if wait := c.Payment.QueueWait(); c.Payment.PendingAfter <= wait {
		return fmt.Errorf("payment.pending_after must exceed the full-queue wait %v, got %v", wait, c.Payment.PendingAfter)
	}
	if c.Outbox.BatchSize <= 0 {
		return fmt.Errorf("outbox.batch_size must be positive, got %d", c.Outbox.BatchSize)
	}
	if c.Kafka.OrderCreatedTopic == "" || c.Kafka.OrderUpdatedTopic == "" {
		return fmt.Errorf("kafka topics must not be empty")
	}

	return nil
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		c.Host, c.Port, c.User, c.DbName, c.Pwd, c.SslMode)
}

// URL is the form golang-migrate expects.
func (c *PostgresConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Pwd, c.Host, c.Port, c.DbName, c.SslMode)
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
