package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg = &Config{Environment: "production"}
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithOptions_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "*", cfg.Server.CORSAllowOrigin)
	assert.Equal(t, "sitebuilder", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "none", cfg.Tracing.TraceExporter)
	assert.Equal(t, 5*time.Minute, cfg.Builder.StyleCacheTTL)
	assert.Equal(t, time.Minute, cfg.Builder.StyleCacheCleanupInterval)
	assert.Equal(t, 768.0, cfg.Builder.TabletMinWidth)
	assert.Equal(t, 1024.0, cfg.Builder.DesktopMinWidth)
	assert.Equal(t, 5, cfg.Builder.SlugMaxAttempts)
}

func TestLoadWithOptions_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("DB_HOST", "testhost")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_METRICS_EXPORTER", "prometheus,datadog")
	t.Setenv("STYLE_CACHE_TTL", "30s")
	t.Setenv("BREAKPOINT_TABLET_MIN", "600")
	t.Setenv("BREAKPOINT_DESKTOP_MIN", "1200")
	t.Setenv("SLUG_MAX_ATTEMPTS", "3")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "testhost", cfg.Database.Host)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "prometheus,datadog", cfg.Tracing.MetricsExporter)
	assert.Equal(t, 30*time.Second, cfg.Builder.StyleCacheTTL)
	assert.Equal(t, 600.0, cfg.Builder.TabletMinWidth)
	assert.Equal(t, 1200.0, cfg.Builder.DesktopMinWidth)
	assert.Equal(t, 3, cfg.Builder.SlugMaxAttempts)
}

func TestLoadWithOptions_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("DB_NAME=from_file\nSLUG_MAX_ATTEMPTS=7\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadWithOptions(LoadOptions{EnvFile: ".env.test"})
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.Database.DBName)
	assert.Equal(t, 7, cfg.Builder.SlugMaxAttempts)
}

func TestLoadWithOptions_MissingEnvFileIsFine(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = LoadWithOptions(LoadOptions{EnvFile: ".env"})
	assert.NoError(t, err)
}

func TestLoadWithOptions_InvalidBuilderSettings(t *testing.T) {
	tests := map[string]map[string]string{
		"desktop below tablet": {"BREAKPOINT_TABLET_MIN": "1200", "BREAKPOINT_DESKTOP_MIN": "800"},
		"zero tablet":          {"BREAKPOINT_TABLET_MIN": "0"},
		"no slug attempts":     {"SLUG_MAX_ATTEMPTS": "0"},
		"negative ttl":         {"STYLE_CACHE_TTL": "-1s"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadWithOptions(LoadOptions{})
			assert.Error(t, err)
		})
	}
}
