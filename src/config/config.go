// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/helper/gc"
)

// EnvConfigFile names the environment variable consulted when no
// configuration path is given explicitly.
const EnvConfigFile = "X509_SEGMENTER_CONFIG_FILE"

// maxConfigSize bounds how much of a configuration file is read.
const maxConfigSize = 1 << 20

// Output formats accepted by defaults.format.
const (
	FormatPEM   = "pem"
	FormatDER   = "der"
	FormatJSON  = "json"
	FormatTree  = "tree"
	FormatTable = "table"
)

var (
	// ErrInvalidConfig indicates that a configuration failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrParseConfig indicates that a configuration file could not be decoded.
	ErrParseConfig = errors.New("config: failed to parse configuration file")
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	// Defaults: Settings applied when a caller does not override them
	Defaults struct {
		// Format: Output format used when none is requested
		Format string `json:"format" yaml:"format" validate:"required,oneof=pem der json tree table"`
		// MaxCertificates: Largest certificate list accepted for one operation
		MaxCertificates int `json:"maxCertificates" yaml:"maxCertificates" validate:"min=2,max=4096"`
		// WarnUnplaced: Log a warning for certificates left out of the chain
		WarnUnplaced bool `json:"warnUnplaced" yaml:"warnUnplaced"`
	} `json:"defaults" yaml:"defaults"`

	// Server: MCP server identity
	Server struct {
		// Name: Server name announced during initialization
		Name string `json:"name" yaml:"name" validate:"required,max=128"`
	} `json:"server" yaml:"server"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Defaults.Format = FormatPEM
	cfg.Defaults.MaxCertificates = 64
	cfg.Defaults.WarnUnplaced = true
	cfg.Server.Name = "X509 Chain Segmenter"
	return cfg
}

// Load reads configuration from a JSON or YAML file and validates it.
//
// Parameters:
//   - path: Configuration file path; when empty, [EnvConfigFile] is consulted
//     and built-in defaults are returned if it is unset too
//
// Returns:
//   - *Config: Defaults overridden by the file's values
//   - error: Read, parse, or validation failure
//
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := gc.ReadFile(path, maxConfigSize)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}

	if err := unmarshalConfig(data, cfg, detectConfigFormat(path)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// detectConfigFormat determines the configuration file format based on
// file extension. Anything other than .yaml or .yml is read as JSON.
func detectConfigFormat(path string) configFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

func unmarshalConfig(data []byte, cfg *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w (YAML): %w", ErrParseConfig, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w (JSON): %w", ErrParseConfig, err)
		}
	}
	return nil
}

// validate is shared by all Config values. Field names in errors use the
// json key rather than the Go field name.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every field constraint and reports all violations at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", fieldPath(fe), describe(fe)))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// fieldPath strips the root type name, turning "Config.defaults.format"
// into "defaults.format".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// Template renders the default configuration as indented JSON, suitable
// as a starting point for a configuration file.
func Template() ([]byte, error) {
	return json.MarshalIndent(Default(), "", "  ")
}
