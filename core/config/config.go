// Package config loads the ambient settings of the reflection module: logging
// and trace export.
//
// A configuration is YAML (JSON is accepted as well):
//
//	logging:
//	  level: debug
//	  format: json
//	telemetry:
//	  endpoint: collector:4318
//	  ca_certs: <base64 PEM bundle>
//	  service_name: plugin-host
package config

import (
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/anoideaopen/reflection/core/stringsx"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLevel       = "warning"
	DefaultServiceName = "reflection"

	FormatText = "text"
	FormatJSON = "json"
)

var ErrCfgBytesEmpty = errors.New("config bytes is empty")

var (
	ErrUnknownFormat  = errors.New("unknown logging format")
	ErrInvalidCACerts = errors.New("invalid CA certificates")
)

// Config is the root of the configuration.
type Config struct {
	Logging   Logging   `yaml:"logging" json:"logging"`
	Telemetry Telemetry `yaml:"telemetry" json:"telemetry"`
}

// Logging configures the module logger. An empty Format picks text output,
// colored when stderr is a terminal.
type Logging struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Telemetry configures the OTLP/HTTP trace exporter. An empty Endpoint
// disables export.
type Telemetry struct {
	Endpoint    string `yaml:"endpoint" json:"endpoint"`
	Insecure    bool   `yaml:"insecure" json:"insecure"`
	CACerts     string `yaml:"ca_certs" json:"ca_certs"`
	ServiceName string `yaml:"service_name" json:"service_name"`
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	cfg := new(Config)
	cfg.applyDefaults()

	return cfg
}

// FromBytes parses a YAML or JSON configuration, fills in defaults and
// validates the result.
func FromBytes(cfgBytes []byte) (*Config, error) {
	if len(cfgBytes) == 0 {
		return nil, ErrCfgBytesEmpty
	}

	cfg := new(Config)
	if err := yaml.Unmarshal(cfgBytes, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	cfgBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return FromBytes(cfgBytes)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}

	return c.Telemetry.Validate()
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLevel
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = DefaultServiceName
	}
}

// Validate checks the level and the format.
func (l Logging) Validate() error {
	if _, err := l.ParseLevel(); err != nil {
		return err
	}
	if l.Format != "" && !stringsx.OneOf(l.Format, FormatText, FormatJSON) {
		return fmt.Errorf("%w: '%s'", ErrUnknownFormat, l.Format)
	}

	return nil
}

// ParseLevel returns the logrus level, DefaultLevel when unset.
func (l Logging) ParseLevel() (logrus.Level, error) {
	level := l.Level
	if level == "" {
		level = DefaultLevel
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("parsing logging level: %w", err)
	}

	return lvl, nil
}

// Validate checks that the CA bundle, if any, decodes.
func (t Telemetry) Validate() error {
	if t.CACerts == "" {
		return nil
	}

	_, err := t.CertPool()

	return err
}

// CertPool decodes CACerts, a base64 encoded PEM bundle, into a pool. It
// returns nil without error when no bundle is configured.
func (t Telemetry) CertPool() (*x509.CertPool, error) {
	if t.CACerts == "" {
		return nil, nil
	}

	pem, err := base64.StdEncoding.DecodeString(t.CACerts)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding: %v", ErrInvalidCACerts, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("%w: no certificate could be added to the pool", ErrInvalidCACerts)
	}

	return pool, nil
}
