package cmd

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alibaba/arraystack/pkg/shell"
)

const (
	defaultLogLevel = "info"
	defaultFormat   = string(shell.FormatText)
)

type Config struct {
	// Capacity of the stack, asked on stdin when neither the file nor a flag sets it.
	Capacity    int    `yaml:"capacity" mapstructure:"capacity"`
	LogLevel    string `yaml:"logLevel" mapstructure:"logLevel"`
	Format      string `yaml:"format" mapstructure:"format"`
	MetricsFile string `yaml:"metricsFile" mapstructure:"metricsFile"`

	// capacitySet tells an explicit capacity of 0 apart from no capacity.
	capacitySet bool
}

// flag name -> config key
var configFlags = map[string]string{
	"capacity":     "capacity",
	"log-level":    "logLevel",
	"format":       "format",
	"metrics-file": "metricsFile",
}

func addConfigFlags(fs *pflag.FlagSet) {
	fs.IntP("capacity", "n", 0, "Stack capacity, asked on stdin when not set")
	fs.String("log-level", defaultLogLevel, "Log level: panic/fatal/error/warn/info/debug/trace")
	fs.StringP("format", "o", defaultFormat, "Display format, support text/json")
	fs.String("metrics-file", "", "Write session metrics in prometheus text format to this file on exit")
}

// loadConfig merges defaults, the optional config file and changed flags,
// in increasing priority.
func loadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("logLevel", defaultLogLevel)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("metricsFile", "")

	if path != "" {
		log.Debugf("load config file %s", path)
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				return nil, fmt.Errorf("config file %s not found", path)
			}
			return nil, fmt.Errorf("failed read config file %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range configFlags {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	})
	if err != nil {
		return nil, fmt.Errorf("failed parse config: %w", err)
	}
	cfg.capacitySet = v.IsSet("capacity")

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if _, err := shell.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
