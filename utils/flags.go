package utils

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options holds the ambient flags every program accepts. None of them is
// required; without flags a program behaves exactly as with defaults.
type Options struct {
	ConfigPath string
	LogFile    string
	LogLevel   string
}

// BindFlags registers the common flags on fs.
func BindFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVar(&opts.ConfigPath, "config", "", "optional YAML config file")
	fs.StringVar(&opts.LogFile, "log-file", "", "optional log file path (logging is disabled without it)")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug|info|warn|error")
}

// Bootstrap initialises the global logger and loads the config described by
// opts. The returned logger must be closed by the caller.
func Bootstrap(opts Options) (*Config, *Logger, error) {
	level, err := ParseLogLevel(opts.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger, err := InitLogger(level, opts.LogFile)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		logger.Close()
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config loaded  path=%q guess=[%d,%d] rect=%dx%d",
		opts.ConfigPath, cfg.Guess.Min, cfg.Guess.Max, cfg.Rectangle.Width, cfg.Rectangle.Height)
	return cfg, logger, nil
}
