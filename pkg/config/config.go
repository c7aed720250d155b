package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by the service.
const EnvPrefix = "nexusshop"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Lookup  LookupConfig
	Advisor AdvisorConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NEXUSSHOP_APP_ENV" default:"dev"`
	Port         string `envconfig:"NEXUSSHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"NEXUSSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NEXUSSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig is optional: an empty URL disables the lookup cache and
// the service runs with every external call going to the wire.
type RedisConfig struct {
	URL          string        `envconfig:"NEXUSSHOP_REDIS_URL"`
	PoolSize     int           `envconfig:"NEXUSSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NEXUSSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NEXUSSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NEXUSSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NEXUSSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a cache backend was configured at all.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

// LookupConfig drives the postal-code and company-registry autofill
// adapters. The source issued these calls with no timeout at all;
// here every call gets a deadline and expiry counts as a failure.
type LookupConfig struct {
	ViaCEPBaseURL    string        `envconfig:"NEXUSSHOP_LOOKUP_VIACEP_BASE_URL" default:"https://viacep.com.br/ws"`
	BrasilAPIBaseURL string        `envconfig:"NEXUSSHOP_LOOKUP_BRASILAPI_BASE_URL" default:"https://brasilapi.com.br/api/cnpj/v1"`
	Timeout          time.Duration `envconfig:"NEXUSSHOP_LOOKUP_TIMEOUT" default:"5s"`
	CacheTTL         time.Duration `envconfig:"NEXUSSHOP_LOOKUP_CACHE_TTL" default:"1h"`
}

// AdvisorConfig configures the product-advisor completion calls. A
// missing API key is a valid, handled state: the advisor answers with
// a fixed "not configured" message instead of failing startup.
type AdvisorConfig struct {
	APIKey  string        `envconfig:"NEXUSSHOP_ADVISOR_API_KEY"`
	Model   string        `envconfig:"NEXUSSHOP_ADVISOR_MODEL" default:"gemini-2.5-flash"`
	BaseURL string        `envconfig:"NEXUSSHOP_ADVISOR_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `envconfig:"NEXUSSHOP_ADVISOR_TIMEOUT" default:"10s"`
}

// Configured reports whether the advisor can attempt real calls.
func (a AdvisorConfig) Configured() bool {
	return strings.TrimSpace(a.APIKey) != ""
}
