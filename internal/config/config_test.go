package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/internal/errors"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricingos.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"defaults": {"client_type": "enterprise", "currency": "USD"},
		"output": {"default_format": "markdown"},
		"server": {"addr": ":9090"}
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.ClientEnterprise, cfg.Defaults.ClientType)
	assert.Equal(t, types.CurrencyUSD, cfg.Defaults.Currency)
	assert.Equal(t, types.PositioningMidMarket, cfg.Defaults.Positioning)
	assert.Equal(t, "markdown", cfg.Output.DefaultFormat)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Defaults.Complexity)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PRICINGOS_SERVER_ADDR", ":7070")
	t.Setenv("PRICINGOS_DEFAULTS_POSITIONING", "premium")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, types.PositioningPremium, cfg.Defaults.Positioning)
}

func TestLoadRejectsInvalidDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"defaults": {"complexity": 9}}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pricingos.json")

	cfg := Default()
	cfg.Output.ShowBreakdown = true
	cfg.Defaults.TypicalDurationDays = 14
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadReadsEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PRICINGOS_OUTPUT_DEFAULT_FORMAT=proposal\n"), 0o644))

	orig := EnvFiles
	EnvFiles = []string{envPath}
	t.Cleanup(func() {
		EnvFiles = orig
		os.Unsetenv("PRICINGOS_OUTPUT_DEFAULT_FORMAT")
	})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "proposal", cfg.Output.DefaultFormat)
}

func TestLoadTracingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricingos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tracing:\n  enabled: true\n  otlp_endpoint: collector:4317\n  sample_ratio: 0.25\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "collector:4317", cfg.Tracing.OTLPEndpoint)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRatio)
	assert.Equal(t, "pricingos", cfg.Tracing.ServiceName)
}
