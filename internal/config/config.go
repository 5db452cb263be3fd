// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	WhatsApp   WhatsAppConfig   `mapstructure:"whatsapp"`
	Razorpay   RazorpayConfig   `mapstructure:"razorpay"`
	Shiprocket ShiprocketConfig `mapstructure:"shiprocket"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Broadcast  BroadcastConfig  `mapstructure:"broadcast"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Shop       ShopConfig       `mapstructure:"shop"`
	Worker     WorkerConfig     `mapstructure:"worker"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	Environment  string `mapstructure:"environment"`
}

// IsDevelopment reports whether stack traces may be exposed in API errors.
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment == "development"
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type WhatsAppConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	APIVersion     string               `mapstructure:"api_version"`
	PhoneNumberID  string               `mapstructure:"phone_number_id"`
	AccessToken    string               `mapstructure:"access_token"`
	VerifyToken    string               `mapstructure:"verify_token"`
	AppSecret      string               `mapstructure:"app_secret"`
	CatalogID      string               `mapstructure:"catalog_id"`
	Timeout        int                  `mapstructure:"timeout"`
	MaxRetries     int                  `mapstructure:"max_retries"`
	RetryBaseMs    int                  `mapstructure:"retry_base_ms"`
	RetryMaxMs     int                  `mapstructure:"retry_max_ms"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// Enabled reports whether outbound messaging credentials are present.
func (w WhatsAppConfig) Enabled() bool {
	return w.PhoneNumberID != "" && w.AccessToken != ""
}

type RazorpayConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	KeyID          string               `mapstructure:"key_id"`
	KeySecret      string               `mapstructure:"key_secret"`
	WebhookSecret  string               `mapstructure:"webhook_secret"`
	CallbackURL    string               `mapstructure:"callback_url"`
	LinkExpiryMins int                  `mapstructure:"link_expiry_mins"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

func (r RazorpayConfig) Enabled() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

type ShiprocketConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	Email          string               `mapstructure:"email"`
	Password       string               `mapstructure:"password"`
	Token          string               `mapstructure:"token"`
	PickupLocation string               `mapstructure:"pickup_location"`
	PickupPincode  string               `mapstructure:"pickup_pincode"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

func (s ShiprocketConfig) Enabled() bool {
	return s.Token != "" || (s.Email != "" && s.Password != "")
}

type OpenAIConfig struct {
	APIKey       string  `mapstructure:"api_key"`
	BaseURL      string  `mapstructure:"base_url"`
	Model        string  `mapstructure:"model"`
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float64 `mapstructure:"temperature"`
	SystemPrompt string  `mapstructure:"system_prompt"`
}

func (o OpenAIConfig) Enabled() bool {
	return o.APIKey != ""
}

type TelemetryConfig struct {
	SheetsURL      string               `mapstructure:"sheets_url"`
	WebhookURL     string               `mapstructure:"webhook_url"`
	WebhookAuthKey string               `mapstructure:"webhook_auth_key"`
	QueueSize      int                  `mapstructure:"queue_size"`
	Workers        int                  `mapstructure:"workers"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type SchedulerConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	JobTimeout    int    `mapstructure:"job_timeout"`
	ReminderBatch int    `mapstructure:"reminder_batch"`
	AdminPhone    string `mapstructure:"admin_phone"`
}

type BroadcastConfig struct {
	BatchSize       int `mapstructure:"batch_size"`
	DefaultSendRate int `mapstructure:"default_send_rate"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	RateWindow     int      `mapstructure:"rate_window"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RequestTimeout int      `mapstructure:"request_timeout"`
}

type AuthConfig struct {
	APITokens []string `mapstructure:"api_tokens"`
}

// ShopConfig holds business constants used in conversational replies.
type ShopConfig struct {
	Name         string `mapstructure:"name"`
	WebsiteURL   string `mapstructure:"website_url"`
	SupportPhone string `mapstructure:"support_phone"`
	UPIID        string `mapstructure:"upi_id"`
}

type WorkerConfig struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queue_size"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAgeDays  int    `mapstructure:"max_age_days"`
}

func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvPrefix("KAAPAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.environment", "production")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.migrations_path", "./migrations")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "kaapav")
	v.SetDefault("whatsapp.base_url", "https://graph.facebook.com")
	v.SetDefault("whatsapp.api_version", "v21.0")
	v.SetDefault("whatsapp.timeout", 15)
	v.SetDefault("whatsapp.max_retries", 3)
	v.SetDefault("whatsapp.retry_base_ms", 500)
	v.SetDefault("whatsapp.retry_max_ms", 4000)
	v.SetDefault("razorpay.base_url", "https://api.razorpay.com/v1")
	v.SetDefault("razorpay.link_expiry_mins", 2880)
	v.SetDefault("razorpay.timeout", 15)
	v.SetDefault("shiprocket.base_url", "https://apiv2.shiprocket.in/v1/external")
	v.SetDefault("shiprocket.pickup_location", "Primary")
	v.SetDefault("shiprocket.timeout", 20)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 300)
	v.SetDefault("openai.temperature", 0.4)
	v.SetDefault("telemetry.queue_size", 1000)
	v.SetDefault("telemetry.workers", 2)
	v.SetDefault("telemetry.timeout", 10)
	for _, prefix := range []string{"whatsapp", "razorpay", "shiprocket", "telemetry"} {
		v.SetDefault(prefix+".circuit_breaker.max_requests", 3)
		v.SetDefault(prefix+".circuit_breaker.interval", 60)
		v.SetDefault(prefix+".circuit_breaker.timeout", 60)
		v.SetDefault(prefix+".circuit_breaker.failure_ratio", 0.6)
		v.SetDefault(prefix+".circuit_breaker.consecutive_fails", 5)
	}
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.job_timeout", 240)
	v.SetDefault("scheduler.reminder_batch", 50)
	v.SetDefault("broadcast.batch_size", 20)
	v.SetDefault("broadcast.default_send_rate", 60)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.rate_window", 60)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
	v.SetDefault("middleware.request_timeout", 30)
	v.SetDefault("shop.name", "KAAPAV")
	v.SetDefault("worker.workers", 8)
	v.SetDefault("worker.queue_size", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 14)
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the PostgreSQL URL form used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}
