package table

import (
	"fmt"
	"time"
)

const MB = 1024 * 1024

// TimeLayout is the layout of Config.Timestamp.
const TimeLayout = "2006-01-02 15:04:05"

// Config controls how the file table is laid out.
type Config struct {
	Label     string `mapstructure:"label" yaml:"label"`
	DiskSize  int64  `mapstructure:"disk_size" yaml:"disk_size"`
	MaxLogs   int    `mapstructure:"max_logs" yaml:"max_logs"`
	Stride    int64  `mapstructure:"stride" yaml:"stride"`
	Marker    string `mapstructure:"marker" yaml:"marker"`
	LogPrefix string `mapstructure:"log_prefix" yaml:"log_prefix"`
	LogExt    string `mapstructure:"log_ext" yaml:"log_ext"`
	Timestamp string `mapstructure:"timestamp" yaml:"timestamp"`
	Autorun   bool   `mapstructure:"autorun" yaml:"autorun"`
	Icon      bool   `mapstructure:"icon" yaml:"icon"`
	Readme    bool   `mapstructure:"readme" yaml:"readme"`
}

func DefaultConfig() Config {
	return Config{
		Label:     "BUTTERF",
		DiskSize:  256 * MB,
		MaxLogs:   100,
		Stride:    2048,
		Marker:    "H Product:Blackbox",
		LogPrefix: "BTTR",
		LogExt:    "BBL",
		Timestamp: "2018-01-01 13:00:00",
		Autorun:   true,
		Icon:      true,
		Readme:    false,
	}
}

func (c Config) Validate() error {
	if c.Label == "" || len(c.Label) > 11 {
		return Fatalf("invalid volume label: '%s'", c.Label)
	}
	if c.DiskSize <= 0 {
		return Fatalf("invalid disk size: %d", c.DiskSize)
	}
	if c.MaxLogs < 0 || c.MaxLogs > 999 {
		return Fatalf("max logs out of range: %d", c.MaxLogs)
	}
	if c.Stride <= 0 {
		return Fatalf("invalid stride: %d", c.Stride)
	}
	if c.Marker == "" {
		return Fatalf("empty segment marker")
	}
	// PREFIX_NNN must fit the 8 character base name
	if c.LogPrefix == "" || len(c.LogPrefix) > 4 {
		return Fatalf("invalid log prefix: '%s'", c.LogPrefix)
	}
	if c.LogExt == "" || len(c.LogExt) > 3 {
		return Fatalf("invalid log extension: '%s'", c.LogExt)
	}
	_, err := c.Time()
	if err != nil {
		return Fatal(err)
	}
	return nil
}

// Time returns the timestamp reported for every entry.
func (c Config) Time() (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, c.Timestamp, time.UTC)
	if err != nil {
		return time.Time{}, Fatalf("invalid timestamp: '%s'", c.Timestamp)
	}
	return t, nil
}

// LogName returns the name of the log file with the given 1-based number.
func (c Config) LogName(number int) string {
	return fmt.Sprintf("%s_%03d.%s", c.LogPrefix, number, c.LogExt)
}

// AllLogsName returns the name of the aggregate file.
func (c Config) AllLogsName() string {
	return fmt.Sprintf("%s_ALL.%s", c.LogPrefix, c.LogExt)
}
