// Package settings holds the tool's own configuration, as opposed to the
// deployment record it generates from.
package settings

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PROTHEUS_COMPOSE_LOG_LEVEL.
const EnvPrefix = "PROTHEUS_COMPOSE"

// Settings holds all application configuration.
type Settings struct {
	Log    LogSettings    `mapstructure:"log"`
	Output OutputSettings `mapstructure:"output"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputSettings controls where generated artifacts go.
type OutputSettings struct {
	Dir    string `mapstructure:"dir"`
	Verify bool   `mapstructure:"verify"`
}

// Load reads settings from path, when given, and from the environment.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Settings, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Settings, error) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.verify", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to parse settings file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}

// ParseLevel maps a level name to its slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger creates a logger with the configured level and format.
// Generated artifacts may go to stdout, so logs are written to w.
func SetupLogger(s *Settings, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(s.Log.Level),
	}

	var handler slog.Handler
	if strings.ToLower(s.Log.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
