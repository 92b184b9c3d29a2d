package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	ServerPort string `mapstructure:"SERVER_PORT"`

	// Backend REST do pet shop.
	APIBaseURL string        `mapstructure:"PETSHOP_API_URL"`
	APITimeout time.Duration `mapstructure:"PETSHOP_API_TIMEOUT"`

	// Offset fixo aplicado aos horários digitados no formulário.
	ScheduleUTCOffset string `mapstructure:"SCHEDULE_UTC_OFFSET"`

	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`

	DBUrl string `mapstructure:"DATABASE_URL"`

	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int           `mapstructure:"REDIS_DB"`
	ReferenceCacheTTL time.Duration `mapstructure:"REFERENCE_CACHE_TTL"`

	ExportBucket    string `mapstructure:"EXPORT_S3_BUCKET"`
	ExportRegion    string `mapstructure:"EXPORT_S3_REGION"`
	ExportEndpoint  string `mapstructure:"EXPORT_S3_ENDPOINT"`
	AWSAccessKeyID  string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey    string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	CORSOriginsList string `mapstructure:"CORS_ORIGINS"`
}

var defaults = map[string]any{
	"ENV":                   "development",
	"LOG_LEVEL":             "info",
	"SERVER_PORT":           "8080",
	"PETSHOP_API_URL":       "http://localhost:8000",
	"PETSHOP_API_TIMEOUT":   "0s",
	"SCHEDULE_UTC_OFFSET":   "-03:00",
	"SESSION_SECRET":        "changeme",
	"SESSION_TTL":           "8h",
	"DATABASE_URL":          "",
	"REDIS_ADDR":            "",
	"REDIS_PASSWORD":        "",
	"REDIS_DB":              0,
	"REFERENCE_CACHE_TTL":   "0s",
	"EXPORT_S3_BUCKET":      "",
	"EXPORT_S3_REGION":      "us-east-1",
	"EXPORT_S3_ENDPOINT":    "",
	"AWS_ACCESS_KEY_ID":     "",
	"AWS_SECRET_ACCESS_KEY": "",
	"CORS_ORIGINS":          "http://localhost:3000,http://localhost:5173",
}

// Load lê .env (se existir), config.yaml opcional e variáveis de ambiente,
// nessa ordem de precedência crescente.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if _, err := cfg.ScheduleLocation(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ScheduleLocation converte SCHEDULE_UTC_OFFSET ("-03:00") numa zona fixa.
func (c *Config) ScheduleLocation() (*time.Location, error) {
	return ParseOffset(c.ScheduleUTCOffset)
}

func (c *Config) CORSOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOriginsList, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func ParseOffset(offset string) (*time.Location, error) {
	t, err := time.Parse("-07:00", strings.TrimSpace(offset))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_UTC_OFFSET %q: %w", offset, err)
	}
	_, secs := t.Zone()
	return time.FixedZone(offset, secs), nil
}
