package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StructureBooking/internal/domain"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/costband"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/quote"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/scenario"
	"github.com/m04kA/SMC-StructureBooking/internal/engine/suggest"
	"github.com/m04kA/SMC-StructureBooking/pkg/geo"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Pricing     PricingConfig     `toml:"pricing"`
	Suggestions SuggestionsConfig `toml:"suggestions"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PricingConfig параметры расчёта смет.
// Денежные значения задаются строками, чтобы не терять точность.
type PricingConfig struct {
	DefaultCurrency string   `toml:"default_currency"`
	BaseUnits       []string `toml:"base_units"`
	CheapMax        string   `toml:"cheap_max"`
	MediumMax       string   `toml:"medium_max"`
	MarginBest      string   `toml:"margin_best"`
	MarginWorst     string   `toml:"margin_worst"`
}

// SuggestionsConfig параметры подбора структур
type SuggestionsConfig struct {
	ReferenceLatitude  *float64 `toml:"reference_latitude"`
	ReferenceLongitude *float64 `toml:"reference_longitude"`
	DefaultLimit       int      `toml:"default_limit"`
	MaxLimit           int      `toml:"max_limit"`
}

// Load загружает конфигурацию из TOML файла, заполняет значения по умолчанию и валидирует её
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки в формате TOML
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: decode toml: %v", ErrInvalidConfig, err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "structure_booking"
	}

	if c.Pricing.DefaultCurrency == "" {
		c.Pricing.DefaultCurrency = domain.DefaultCurrency
	}
	if len(c.Pricing.BaseUnits) == 0 {
		c.Pricing.BaseUnits = append([]string(nil), domain.BaseParticipantUnits...)
	}
	if c.Pricing.CheapMax == "" {
		c.Pricing.CheapMax = domain.DefaultCheapMax
	}
	if c.Pricing.MediumMax == "" {
		c.Pricing.MediumMax = domain.DefaultMediumMax
	}
	if c.Pricing.MarginBest == "" {
		c.Pricing.MarginBest = domain.DefaultMarginBest
	}
	if c.Pricing.MarginWorst == "" {
		c.Pricing.MarginWorst = domain.DefaultMarginWorst
	}

	if c.Suggestions.DefaultLimit == 0 {
		c.Suggestions.DefaultLimit = domain.DefaultSuggestionLimit
	}
	if c.Suggestions.MaxLimit == 0 {
		c.Suggestions.MaxLimit = domain.MaxSuggestionLimit
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	thresholds, err := c.Pricing.Thresholds()
	if err != nil {
		return err
	}
	if thresholds.CheapMax.GreaterThan(thresholds.MediumMax) {
		return fmt.Errorf("%w: pricing.cheap_max must not exceed pricing.medium_max", ErrInvalidConfig)
	}

	margins, err := c.Pricing.Margins()
	if err != nil {
		return err
	}
	if err := margins.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	s := c.Suggestions
	if (s.ReferenceLatitude == nil) != (s.ReferenceLongitude == nil) {
		return fmt.Errorf("%w: suggestions.reference_latitude and reference_longitude must be set together", ErrInvalidConfig)
	}
	if s.ReferenceLatitude != nil && (*s.ReferenceLatitude < -90 || *s.ReferenceLatitude > 90) {
		return fmt.Errorf("%w: suggestions.reference_latitude out of range", ErrInvalidConfig)
	}
	if s.ReferenceLongitude != nil && (*s.ReferenceLongitude < -180 || *s.ReferenceLongitude > 180) {
		return fmt.Errorf("%w: suggestions.reference_longitude out of range", ErrInvalidConfig)
	}
	if s.DefaultLimit < 0 || s.MaxLimit < 0 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("%w: suggestions.default_limit must be between 0 and max_limit", ErrInvalidConfig)
	}

	return nil
}

// Thresholds возвращает границы ценовых категорий
func (p PricingConfig) Thresholds() (costband.Thresholds, error) {
	cheap, err := parseDecimal("pricing.cheap_max", p.CheapMax)
	if err != nil {
		return costband.Thresholds{}, err
	}
	medium, err := parseDecimal("pricing.medium_max", p.MediumMax)
	if err != nil {
		return costband.Thresholds{}, err
	}
	return costband.Thresholds{CheapMax: cheap, MediumMax: medium}, nil
}

// Margins возвращает маржи сценариев
func (p PricingConfig) Margins() (scenario.Margins, error) {
	best, err := parseDecimal("pricing.margin_best", p.MarginBest)
	if err != nil {
		return scenario.Margins{}, err
	}
	worst, err := parseDecimal("pricing.margin_worst", p.MarginWorst)
	if err != nil {
		return scenario.Margins{}, err
	}
	return scenario.Margins{Best: best, Worst: worst}, nil
}

// QuoteConfig собирает параметры калькулятора смет.
// Вызывать только для конфигурации, прошедшей Load.
func (c *Config) QuoteConfig() quote.Config {
	thresholds, _ := c.Pricing.Thresholds()
	return quote.Config{
		DefaultCurrency: c.Pricing.DefaultCurrency,
		BaseUnits:       append([]string(nil), c.Pricing.BaseUnits...),
		Thresholds:      thresholds,
	}
}

// ScenarioMargins возвращает маржи по умолчанию для сценариев
func (c *Config) ScenarioMargins() scenario.Margins {
	margins, _ := c.Pricing.Margins()
	return margins
}

// SuggestConfig собирает параметры подбора структур
func (c *Config) SuggestConfig() suggest.Config {
	thresholds, _ := c.Pricing.Thresholds()
	cfg := suggest.Config{Thresholds: thresholds}
	if c.Suggestions.ReferenceLatitude != nil && c.Suggestions.ReferenceLongitude != nil {
		ref := geo.Pt(*c.Suggestions.ReferenceLatitude, *c.Suggestions.ReferenceLongitude)
		cfg.Reference = &ref
	}
	return cfg
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, field, err)
	}
	return d, nil
}
