package config

import (
	"flag"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type DBType string

const (
	DBTypeSQLite   DBType = "sqlite"
	DBTypePostgres DBType = "postgres"
	DBTypeInMemory DBType = "inMemory"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultSQLitePath    = "shortlink.db"
	defaultCacheTTL      = 10 * time.Minute
)

type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL
	BaseURL *url.URL `env:"BASE_URL"`
	// Тип хранилища
	DBType DBType `env:"DB"`
	// Файл базы SQLite
	SQLitePath string `env:"SQLITE_PATH"`
	// Строка подключения к PostgreSQL
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Адрес Redis. Пустой: кеш выключен
	RedisAddr string `env:"REDIS_ADDR"`
	// Время жизни записи в кеше
	CacheTTL time.Duration `env:"CACHE_TTL"`
	// Уровень логирования zap, пустой: по GIN_MODE
	LogLevel string `env:"LOG_LEVEL"`
}

// LoadConfig собирает конфигурацию из переменных окружения и флагов командной строки.
// Непустое значение из окружения важнее флага.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

// MustLoadConfig вызывает панику если конфигурацию загрузить не удалось.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

func load(args []string) (*Config, error) {
	var envConfig Config
	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrap(err, "parse ENV config error")
	}

	flagsConfig, flagsErr := loadFlags(args)
	if flagsErr != nil {
		return nil, errors.Wrap(flagsErr, "parse flags error")
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if conf.BaseURL != nil {
		conf.BaseURL = stripBaseURL(conf.BaseURL)
	}
	if conf.DBType == "" {
		conf.DBType = DBTypeSQLite
		if conf.DatabaseDSN != "" {
			conf.DBType = DBTypePostgres
		}
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// loadFlags парсит флаги командной строки.
func loadFlags(args []string) (*Config, error) {
	var flagsConfig Config
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)

	fs.StringVar(&flagsConfig.ServerAddress, "a", defaultServerAddress, "Адрес сервера")
	fs.Func("b", "Базовый адрес сокращенного URL (по умолчанию Scheme://Host запроса)", func(rawURL string) error {
		parsedURL, err := url.ParseRequestURI(rawURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}
		flagsConfig.BaseURL = parsedURL
		return nil
	})
	fs.Func("s", "Тип хранилища: sqlite, postgres, inMemory", func(value string) error {
		flagsConfig.DBType = DBType(value)
		return nil
	})
	fs.StringVar(&flagsConfig.SQLitePath, "f", defaultSQLitePath, "Файл базы SQLite")
	fs.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Строка подключения к PostgreSQL")
	fs.StringVar(&flagsConfig.RedisAddr, "r", "", "Адрес Redis для кеша ссылок")
	fs.DurationVar(&flagsConfig.CacheTTL, "t", defaultCacheTTL, "Время жизни записи в кеше")
	fs.StringVar(&flagsConfig.LogLevel, "l", "", "Уровень логирования")

	if err := fs.Parse(args); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &flagsConfig, nil
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress: firstNonZero(envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:       firstNonZero(envConfig.BaseURL, flagsConfig.BaseURL),
		DBType:        firstNonZero(envConfig.DBType, flagsConfig.DBType),
		SQLitePath:    firstNonZero(envConfig.SQLitePath, flagsConfig.SQLitePath),
		DatabaseDSN:   firstNonZero(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		RedisAddr:     firstNonZero(envConfig.RedisAddr, flagsConfig.RedisAddr),
		CacheTTL:      firstNonZero(envConfig.CacheTTL, flagsConfig.CacheTTL),
		LogLevel:      firstNonZero(envConfig.LogLevel, flagsConfig.LogLevel),
	}
}

func firstNonZero[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

// stripBaseURL оставляет только Scheme и Host, Path и Query базового адреса отбрасываются.
func stripBaseURL(u *url.URL) *url.URL {
	return &url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
	}
}

func (c *Config) validate() error {
	switch c.DBType {
	case DBTypeSQLite, DBTypeInMemory:
	case DBTypePostgres:
		if c.DatabaseDSN == "" {
			return errors.New("postgres storage requires DATABASE_DSN")
		}
	default:
		return errors.Errorf("unknown storage type %q", c.DBType)
	}
	if c.BaseURL != nil && (c.BaseURL.Scheme == "" || c.BaseURL.Host == "") {
		return errors.Errorf("base url %q must contain scheme and host", c.BaseURL)
	}
	return nil
}
