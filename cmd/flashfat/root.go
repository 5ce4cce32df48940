package main

import (
	"github.com/charmbracelet/log"
	"github.com/rstms/flashfat/image"
	"github.com/rstms/flashfat/table"
	"github.com/rstms/go-common"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "flashfat",
	Short:         "present flight recorder flash dumps as a FAT volume",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := initConfig()
		if err != nil {
			return err
		}
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("label", "", "volume label")
	flags.Int64("disk-size", 0, "virtual disk size in bytes")
	flags.Int("max-logs", 0, "maximum number of log files")
	flags.Int64("stride", 0, "segment scan stride in bytes")
	flags.String("marker", "", "segment header marker")
	flags.Bool("readme", false, "add readme.txt")
	bindFlags(flags)
	setDefaults(table.DefaultConfig())
	viper.SetEnvPrefix("flashfat")
	viper.AutomaticEnv()
}

func bindFlags(flags *pflag.FlagSet) {
	for key, flag := range map[string]string{
		"config":    "config",
		"debug":     "debug",
		"label":     "label",
		"disk_size": "disk-size",
		"max_logs":  "max-logs",
		"stride":    "stride",
		"marker":    "marker",
		"readme":    "readme",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}

func setDefaults(cfg table.Config) {
	viper.SetDefault("label", cfg.Label)
	viper.SetDefault("disk_size", cfg.DiskSize)
	viper.SetDefault("max_logs", cfg.MaxLogs)
	viper.SetDefault("stride", cfg.Stride)
	viper.SetDefault("marker", cfg.Marker)
	viper.SetDefault("log_prefix", cfg.LogPrefix)
	viper.SetDefault("log_ext", cfg.LogExt)
	viper.SetDefault("timestamp", cfg.Timestamp)
	viper.SetDefault("autorun", cfg.Autorun)
	viper.SetDefault("icon", cfg.Icon)
	viper.SetDefault("readme", cfg.Readme)
}

func initConfig() error {
	filename := viper.GetString("config")
	if filename == "" {
		return nil
	}
	if !common.IsFile(filename) {
		return common.Fatalf("config file not found: %s", filename)
	}
	viper.SetConfigFile(filename)
	err := viper.ReadInConfig()
	if err != nil {
		return common.Fatal(err)
	}
	log.Debug("config loaded", "filename", filename)
	return nil
}

func loadConfig() (table.Config, error) {
	var cfg table.Config
	err := viper.Unmarshal(&cfg)
	if err != nil {
		return cfg, common.Fatal(err)
	}
	return cfg, nil
}

func openImage(filename string) (*image.Image, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return image.OpenImage(afero.NewOsFs(), filename, cfg, image.WithLogger(log.Default()))
}
