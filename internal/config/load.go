package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override record
// fields, e.g. PROTHEUS_POSTGRES_PASSWORD.
const EnvPrefix = "PROTHEUS"

// Load reads a record file (YAML, TOML or JSON, chosen by extension) on top of
// the defaults, applies environment overrides and returns the normalized
// record. An empty path yields the defaults plus environment overrides.
func Load(path string) (Record, error) {
	v := viper.New()
	if err := SetDefaults(v); err != nil {
		return Record{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Record{}, fmt.Errorf("failed to read record %s: %w", path, err)
		}
	}

	return decode(v)
}

// Parse reads a record from raw content in the given format.
func Parse(content []byte, format string) (Record, error) {
	v := viper.New()
	if err := SetDefaults(v); err != nil {
		return Record{}, err
	}

	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return Record{}, fmt.Errorf("failed to parse %s record: %w", format, err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (Record, error) {
	var rec Record
	if err := v.Unmarshal(&rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode record: %w", err)
	}

	// Accept the short engine aliases in files too.
	if rec.DatabaseType != "" {
		if engine, err := ParseEngine(string(rec.DatabaseType)); err == nil {
			rec.DatabaseType = engine
		}
	}

	return rec.Normalize(), nil
}

// FormatFromPath maps a file extension to a record format name.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// Encode renders r as a record file in format ("yaml" or "toml").
func Encode(r Record, format string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("failed to encode record as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(r); err != nil {
			return nil, fmt.Errorf("failed to encode record as toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported record format %q", format)
	}

	return buf.Bytes(), nil
}
