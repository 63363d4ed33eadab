package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "1.0"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Tracing     TracingConfig
	Builder     BuilderConfig
	Environment string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port            int
	Host            string
	ShutdownTimeout time.Duration
	CORSAllowOrigin string
	SSL             SSLConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxLife  time.Duration
}

type SSLConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64

	// TraceExporter is one of "jaeger", "zipkin", "stackdriver", "datadog", "xray" or "none"
	TraceExporter string

	JaegerEndpoint       string
	ZipkinEndpoint       string
	StackdriverProjectID string
	DatadogAgentAddress  string
	DatadogAPIKey        string
	XRayRegion           string

	// AgentEndpoint is used by exporters that fall back to a shared agent
	AgentEndpoint string

	// MetricsExporter is a comma-separated list of "prometheus", "stackdriver", "datadog", or "none"
	MetricsExporter string
	PrometheusPort  int
}

// BuilderConfig holds the page builder knobs
type BuilderConfig struct {
	StyleCacheTTL             time.Duration
	StyleCacheCleanupInterval time.Duration
	TabletMinWidth            float64
	DesktopMinWidth           float64
	SlugMaxAttempts           int
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "60s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "sitebuilder")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 25)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "20m")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "sitebuilder-api")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "none")
	v.SetDefault("TRACING_JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_ZIPKIN_ENDPOINT", "http://localhost:9411/api/v2/spans")
	v.SetDefault("TRACING_STACKDRIVER_PROJECT_ID", "")
	v.SetDefault("TRACING_DATADOG_AGENT_ADDRESS", "localhost:8126")
	v.SetDefault("TRACING_DATADOG_API_KEY", "")
	v.SetDefault("TRACING_XRAY_REGION", "us-west-2")
	v.SetDefault("TRACING_AGENT_ENDPOINT", "localhost:8126")
	v.SetDefault("TRACING_METRICS_EXPORTER", "none")
	v.SetDefault("TRACING_PROMETHEUS_PORT", 9464)

	v.SetDefault("CORS_ALLOW_ORIGIN", "*")

	v.SetDefault("STYLE_CACHE_TTL", "5m")
	v.SetDefault("STYLE_CACHE_CLEANUP_INTERVAL", "1m")
	v.SetDefault("BREAKPOINT_TABLET_MIN", 768)
	v.SetDefault("BREAKPOINT_DESKTOP_MIN", 1024)
	v.SetDefault("SLUG_MAX_ATTEMPTS", 5)

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
			SSL: SSLConfig{
				Enabled:  v.GetBool("SSL_ENABLED"),
				CertFile: v.GetString("SSL_CERT_FILE"),
				KeyFile:  v.GetString("SSL_KEY_FILE"),
			},
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetInt("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			DBName:       v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLife:  v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Tracing: TracingConfig{
			Enabled:              v.GetBool("TRACING_ENABLED"),
			ServiceName:          v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability:  v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
			TraceExporter:        v.GetString("TRACING_TRACE_EXPORTER"),
			JaegerEndpoint:       v.GetString("TRACING_JAEGER_ENDPOINT"),
			ZipkinEndpoint:       v.GetString("TRACING_ZIPKIN_ENDPOINT"),
			StackdriverProjectID: v.GetString("TRACING_STACKDRIVER_PROJECT_ID"),
			DatadogAgentAddress:  v.GetString("TRACING_DATADOG_AGENT_ADDRESS"),
			DatadogAPIKey:        v.GetString("TRACING_DATADOG_API_KEY"),
			XRayRegion:           v.GetString("TRACING_XRAY_REGION"),
			AgentEndpoint:        v.GetString("TRACING_AGENT_ENDPOINT"),
			MetricsExporter:      v.GetString("TRACING_METRICS_EXPORTER"),
			PrometheusPort:       v.GetInt("TRACING_PROMETHEUS_PORT"),
		},
		Builder: BuilderConfig{
			StyleCacheTTL:             v.GetDuration("STYLE_CACHE_TTL"),
			StyleCacheCleanupInterval: v.GetDuration("STYLE_CACHE_CLEANUP_INTERVAL"),
			TabletMinWidth:            v.GetFloat64("BREAKPOINT_TABLET_MIN"),
			DesktopMinWidth:           v.GetFloat64("BREAKPOINT_DESKTOP_MIN"),
			SlugMaxAttempts:           v.GetInt("SLUG_MAX_ATTEMPTS"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	if err := config.Builder.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b BuilderConfig) validate() error {
	if b.TabletMinWidth <= 0 || b.DesktopMinWidth <= b.TabletMinWidth {
		return fmt.Errorf("invalid breakpoints: BREAKPOINT_TABLET_MIN=%v must be positive and below BREAKPOINT_DESKTOP_MIN=%v",
			b.TabletMinWidth, b.DesktopMinWidth)
	}
	if b.SlugMaxAttempts < 1 {
		return fmt.Errorf("SLUG_MAX_ATTEMPTS must be at least 1, got %d", b.SlugMaxAttempts)
	}
	if b.StyleCacheTTL < 0 {
		return fmt.Errorf("STYLE_CACHE_TTL must not be negative")
	}
	return nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
