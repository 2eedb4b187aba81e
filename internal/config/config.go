package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Telegram TelegramConfig `toml:"telegram"`
}

// ServerConfig настройки HTTP-сервера.
// AllowedOrigin — источник мини-приложения для CORS; пустое значение
// разрешает любой источник (режим локальной разработки).
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	AllowedOrigin   string `toml:"allowed_origin"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig политика расчёта слотов.
// DefaultDayStart/DefaultDayEnd — часы работы, подставляемые для дней,
// не настроенных в расписании мастера. Пустые значения означают,
// что ненастроенный день считается выходным и слоты не выдаются.
type BookingConfig struct {
	DefaultDayStart string `toml:"default_day_start"`
	DefaultDayEnd   string `toml:"default_day_end"`
}

// HasDefaultHours возвращает true, если настроены часы работы по умолчанию
func (b BookingConfig) HasDefaultHours() bool {
	return b.DefaultDayStart != "" && b.DefaultDayEnd != ""
}

// TelegramConfig настройки Telegram-бота.
// Токен и секрет вебхука не хранятся в config.toml — только в окружении.
type TelegramConfig struct {
	WebAppURL         string  `toml:"webapp_url"`
	AdminChatID       int64   `toml:"admin_chat_id"`
	MessagesPerSecond float64 `toml:"messages_per_second"`
	Token             string  `toml:"-"`
	WebhookSecret     string  `toml:"-"`
}

// Enabled возвращает true, если бот сконфигурирован
func (t TelegramConfig) Enabled() bool {
	return t.Token != ""
}

// Load читает конфигурацию из TOML-файла и накладывает секреты из окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	// Секреты и переопределения из окружения
	cfg.Telegram.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.Telegram.WebhookSecret = os.Getenv("TELEGRAM_WEBHOOK_SECRET")
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("ADMIN_TELEGRAM_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: ADMIN_TELEGRAM_ID: %v", ErrInvalidConfig, err)
		}
		cfg.Telegram.AdminChatID = id
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	// Часы по умолчанию задаются либо оба, либо ни одного
	if (c.Booking.DefaultDayStart == "") != (c.Booking.DefaultDayEnd == "") {
		return fmt.Errorf("%w: booking.default_day_start and default_day_end must be set together", ErrInvalidConfig)
	}
	if c.Telegram.MessagesPerSecond <= 0 {
		c.Telegram.MessagesPerSecond = 20
	}
	return nil
}
