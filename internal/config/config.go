package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	defaultEnv            = EnvLocal
	defaultLogLevel       = ""
	defaultServerAddress  = "localhost:8080"
	defaultDriver         = DriverSQLite
	defaultConfigDir      = ".receivecopy"
	defaultSQLiteFile     = "receives.db"
	defaultMigrations     = "migrations"
	defaultCacheKey       = "receives"
	defaultSeedSource     = "receives.json"
	defaultPageSize       = 20
	defaultSeedTimeoutSec = 10
)

type Config struct {
	Env      string
	Logger   logger
	Server   server
	Storage  storage
	Seed     seed
	PageSize int
}

type logger struct {
	LogLevel string `mapstructure:"log_level"`
}

type server struct {
	Address string `mapstructure:"server_address"`
}

type storage struct {
	Driver      string `mapstructure:"storage_driver"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	DatabaseURI string `mapstructure:"database_uri"`
	Migrations  string `mapstructure:"migrations_path"`
	CacheKey    string `mapstructure:"cache_key"`
}

type seed struct {
	Source  string        `mapstructure:"seed_source"`
	Timeout time.Duration
}

// MustLoad загружает конфигурацию и паникует при ошибке
func MustLoad(configFile string) *Config {
	cfg, err := Load(configFile)
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env, переменные окружения и необязательный YAML-файл.
// Переменные окружения важнее файла.
func Load(configFile string) (*Config, error) {
	loadDotEnv()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	configDir := defaultConfigPath()
	if configFile == "" {
		candidate := filepath.Join(configDir, "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	return fromViper(v, configDir)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("STORAGE_DRIVER", defaultDriver)
	v.SetDefault("SQLITE_PATH", "")
	v.SetDefault("DATABASE_URI", "")
	v.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	v.SetDefault("CACHE_KEY", defaultCacheKey)
	v.SetDefault("SEED_SOURCE", defaultSeedSource)
	v.SetDefault("PAGE_SIZE", defaultPageSize)
	v.SetDefault("SEED_TIMEOUT_SECONDS", defaultSeedTimeoutSec)
}

func fromViper(v *viper.Viper, configDir string) (*Config, error) {
	sqlitePath := v.GetString("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = filepath.Join(configDir, defaultSQLiteFile)
	}

	cfg := &Config{
		Env:    strings.ToLower(v.GetString("APP_ENV")),
		Logger: logger{LogLevel: v.GetString("LOG_LEVEL")},
		Server: server{Address: v.GetString("SERVER_ADDRESS")},
		Storage: storage{
			Driver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
			SQLitePath:  sqlitePath,
			DatabaseURI: v.GetString("DATABASE_URI"),
			Migrations:  v.GetString("MIGRATIONS_PATH"),
			CacheKey:    v.GetString("CACHE_KEY"),
		},
		Seed: seed{
			Source:  v.GetString("SEED_SOURCE"),
			Timeout: time.Duration(v.GetInt("SEED_TIMEOUT_SECONDS")) * time.Second,
		},
		PageSize: v.GetInt("PAGE_SIZE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		errs = append(errs, fmt.Errorf("unknown app_env %q", c.Env))
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite_path must not be empty"))
		}
	case DriverPostgres:
		if c.Storage.DatabaseURI == "" {
			errs = append(errs, errors.New("database_uri is required for postgres storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage_driver %q", c.Storage.Driver))
	}

	if c.Storage.CacheKey == "" {
		errs = append(errs, errors.New("cache_key must not be empty"))
	}
	if c.PageSize < 0 {
		errs = append(errs, fmt.Errorf("page_size must be >= 0, got %d", c.PageSize))
	}
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server_address must not be empty"))
	}
	if c.Seed.Timeout <= 0 {
		errs = append(errs, errors.New("seed_timeout_seconds must be positive"))
	}

	return errors.Join(errs...)
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}

func loadDotEnv() {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}
}

// defaultConfigPath - ~/.receivecopy, или ./.receivecopy без домашней директории
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, defaultConfigDir)
}

// EnsureDir создает директорию для файла SQLite
func (c *Config) EnsureDir() error {
	if c.Storage.Driver != DriverSQLite {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Storage.SQLitePath), 0o700)
}
