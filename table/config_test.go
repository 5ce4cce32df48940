package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Nil(t, cfg.Validate())
	require.Equal(t, int64(256*MB), cfg.DiskSize)
	ts, err := cfg.Time()
	require.Nil(t, err)
	require.Equal(t, time.Date(2018, 1, 1, 13, 0, 0, 0, time.UTC), ts)
}

func TestLogNames(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "BTTR_001.BBL", cfg.LogName(1))
	require.Equal(t, "BTTR_042.BBL", cfg.LogName(42))
	require.Equal(t, "BTTR_100.BBL", cfg.LogName(100))
	require.Equal(t, "BTTR_ALL.BBL", cfg.AllLogsName())
	cfg.LogPrefix = "LOG"
	cfg.LogExt = "EXT"
	require.Equal(t, "LOG_001.EXT", cfg.LogName(1))
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"label":     func(c *Config) { c.Label = "" },
		"longlabel": func(c *Config) { c.Label = "ABCDEFGHIJKL" },
		"disk":      func(c *Config) { c.DiskSize = 0 },
		"maxlogs":   func(c *Config) { c.MaxLogs = 1000 },
		"negative":  func(c *Config) { c.MaxLogs = -1 },
		"stride":    func(c *Config) { c.Stride = 0 },
		"marker":    func(c *Config) { c.Marker = "" },
		"prefix":    func(c *Config) { c.LogPrefix = "LOGS1" },
		"ext":       func(c *Config) { c.LogExt = "" },
		"timestamp": func(c *Config) { c.Timestamp = "yesterday" },
	}
	for name, mutate := range tests {
		cfg := DefaultConfig()
		mutate(&cfg)
		require.NotNil(t, cfg.Validate(), name)
	}
}
