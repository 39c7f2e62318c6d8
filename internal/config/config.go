package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Admin         AdminConfig         `toml:"admin"`
	Clinic        ClinicConfig        `toml:"clinic"`
	Dashboard     DashboardConfig     `toml:"dashboard"`
	Notifications NotificationsConfig `toml:"notifications"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret      string `toml:"jwt_secret"`
	Issuer         string `toml:"issuer"`
	AccessTokenTTL int    `toml:"access_token_ttl"` // минуты
}

// AdminConfig список email администраторов. Проверяется на сервере при каждом запросе.
// Учетные записи администраторов создаются при старте с bcrypt хешем PasswordHash
type AdminConfig struct {
	Emails       []string `toml:"emails"`
	PasswordHash string   `toml:"password_hash"`
}

type ClinicConfig struct {
	Timezone        string   `toml:"timezone"`
	Branches        []string `toml:"branches"`
	Services        []string `toml:"services"`
	SlotGrid        []string `toml:"slot_grid"` // явная сетка; если пусто - генерируется
	FirstSlot       string   `toml:"first_slot"`
	LastSlot        string   `toml:"last_slot"`
	SlotStepMinutes int      `toml:"slot_step_minutes"`
}

type DashboardConfig struct {
	PageSize            int `toml:"page_size"`
	UpcomingDays        int `toml:"upcoming_days"`
	RecentActivityLimit int `toml:"recent_activity_limit"`
}

type NotificationsConfig struct {
	Enabled   bool   `toml:"enabled"`
	RedisAddr string `toml:"redis_addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	Channel   string `toml:"channel"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает TOML файл, затем .env (если есть) и переменные окружения, перекрывающие значения файла
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "dental_booking",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrationsPath:  "migrations",
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "dental_booking",
		},
		Auth: AuthConfig{
			Issuer:         "dental-booking",
			AccessTokenTTL: 60,
		},
		Clinic: ClinicConfig{
			Timezone:        "Asia/Manila",
			Branches:        append([]string(nil), domain.DefaultBranches...),
			Services:        append([]string(nil), domain.DefaultServices...),
			FirstSlot:       domain.DefaultFirstSlot,
			LastSlot:        domain.DefaultLastSlot,
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
		},
		Dashboard: DashboardConfig{
			PageSize:            domain.DefaultPageSize,
			UpcomingDays:        domain.DefaultUpcomingDays,
			RecentActivityLimit: domain.DefaultRecentActivityLimit,
		},
		Notifications: NotificationsConfig{
			RedisAddr: "localhost:6379",
			Channel:   "dental-booking:changes",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             5,
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (or JWT_SECRET) is required", ErrInvalidConfig)
	}
	if len(c.Clinic.Branches) == 0 {
		return fmt.Errorf("%w: clinic.branches must not be empty", ErrInvalidConfig)
	}
	if len(c.Clinic.Services) == 0 {
		return fmt.Errorf("%w: clinic.services must not be empty", ErrInvalidConfig)
	}
	if c.Dashboard.PageSize <= 0 {
		return fmt.Errorf("%w: dashboard.page_size must be positive", ErrInvalidConfig)
	}
	if _, err := c.Clinic.Build(); err != nil {
		return err
	}
	return nil
}

// Build собирает domain.Clinic: часовой пояс и сетку слотов
func (c ClinicConfig) Build() (*domain.Clinic, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: clinic.timezone: %v", ErrInvalidConfig, err)
	}

	var grid domain.SlotGrid
	if len(c.SlotGrid) > 0 {
		grid, err = domain.NewSlotGrid(c.SlotGrid)
	} else {
		grid, err = generateGrid(c.FirstSlot, c.LastSlot, c.SlotStepMinutes)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: clinic slot grid: %v", ErrInvalidConfig, err)
	}

	return &domain.Clinic{
		Branches: normalizeAll(c.Branches),
		Services: normalizeAll(c.Services),
		SlotGrid: grid,
		Location: loc,
	}, nil
}

// AccessTokenTTLDuration время жизни access токена
func (a AuthConfig) AccessTokenTTLDuration() time.Duration {
	return time.Duration(a.AccessTokenTTL) * time.Minute
}

func generateGrid(first, last string, step int) (domain.SlotGrid, error) {
	firstTS, err := types.NewTimeStringFromString(first)
	if err != nil {
		return nil, err
	}
	lastTS, err := types.NewTimeStringFromString(last)
	if err != nil {
		return nil, err
	}
	return domain.GenerateSlotGrid(firstTS, lastTS, step)
}

func normalizeAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if key := domain.NormalizeKey(v); key != "" {
			result = append(result, key)
		}
	}
	return result
}

// applyEnv перекрывает значения переменными окружения (секреты не хранятся в config.toml)
func applyEnv(cfg *Config) {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.DBName = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Notifications.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Notifications.Password = v
	}
	if v := os.Getenv("ADMIN_EMAILS"); v != "" {
		emails := make([]string, 0)
		for _, email := range strings.Split(v, ",") {
			if email = strings.TrimSpace(email); email != "" {
				emails = append(emails, email)
			}
		}
		cfg.Admin.Emails = emails
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		cfg.Admin.PasswordHash = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
}
