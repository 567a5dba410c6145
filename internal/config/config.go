package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/Behyna/university-finance/pkg/lock"
	"github.com/Behyna/university-finance/pkg/mq"
	"github.com/Behyna/university-finance/pkg/mysql"
	"github.com/Behyna/university-finance/pkg/notifier"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "FINANCE"

type Config struct {
	API      API             `mapstructure:"api"`
	Database Database        `mapstructure:"database"`
	RabbitMQ mq.Config       `mapstructure:"rabbitmq"`
	Redis    lock.Config     `mapstructure:"redis"`
	Notifier notifier.Config `mapstructure:"notifier"`
	Finance  Finance         `mapstructure:"finance"`
	Metrics  Metrics         `mapstructure:"metrics"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Database struct {
	mysql.Config `mapstructure:",squash"`
	// Driver is "mysql" or "sqlite"; sqlite is meant for local runs.
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	Migrate    bool   `mapstructure:"migrate"`
}

type Finance struct {
	NumberRetries   int           `mapstructure:"number_retries"`
	StrictSpend     bool          `mapstructure:"strict_spend"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
	PublishInterval time.Duration `mapstructure:"publish_interval"`
	BatchSize       int           `mapstructure:"batch_size"`
	Timezone        string        `mapstructure:"timezone"`
}

type Metrics struct {
	Enable bool `mapstructure:"enable"`
}

func Load() (*Config, error) {
	return LoadFrom("./config")
}

// LoadFrom reads config.yml from path, then applies .env and FINANCE_* overrides.
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if _, err := time.LoadLocation(cfg.Finance.Timezone); err != nil {
		return nil, fmt.Errorf("invalid finance.timezone %q: %w", cfg.Finance.Timezone, err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "8080")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.migrate", true)
	v.SetDefault("redis.enable", false)
	v.SetDefault("redis.lock_expiry", 10*time.Second)
	v.SetDefault("redis.lock_tries", 32)
	v.SetDefault("notifier.timeout", 5*time.Second)
	v.SetDefault("notifier.max_retries", 3)
	v.SetDefault("finance.number_retries", 3)
	v.SetDefault("finance.strict_spend", false)
	v.SetDefault("finance.sweep_interval", time.Hour)
	v.SetDefault("finance.publish_interval", 30*time.Second)
	v.SetDefault("finance.batch_size", 100)
	v.SetDefault("finance.timezone", "UTC")
	v.SetDefault("metrics.enable", true)
}

// Clock returns the current time in the configured finance timezone.
func (f Finance) Clock() func() time.Time {
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return func() time.Time {
		return time.Now().In(loc)
	}
}
