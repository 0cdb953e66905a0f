// Package config resolves the probe's connection settings from flags,
// environment variables, and an optional YAML file, in that precedence
// order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/probeops/check-hbase-tables/internal/hbase"
	"github.com/probeops/check-hbase-tables/internal/validation"
)

const (
	// envPrefix makes CHECK_HBASE_HOST, CHECK_HBASE_PORT, and so on
	// available as defaults for the corresponding flags.
	envPrefix = "CHECK_HBASE"

	DefaultPort           = 9090
	DefaultTimeoutSeconds = 20
)

// Config holds the validated settings for one probe run.
type Config struct {
	Host   string
	Port   int
	Tables []string

	// Timeout bounds the whole run: the watchdog, connection
	// establishment, and every socket operation share it.
	Timeout time.Duration
}

// Load resolves and validates the probe settings. flags must carry "host",
// "port", "tables", and "timeout" entries; set values take precedence over
// CHECK_HBASE_* environment variables, which take precedence over the
// optional config file, which takes precedence over the built-in defaults.
// When listOnly is set the tables requirement is waived: listing needs a
// reachable gateway, not a table selection.
func Load(flags *pflag.FlagSet, configFile string, listOnly bool) (*Config, error) {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("timeout", DefaultTimeoutSeconds)
	for _, key := range []string{"host", "port", "tables", "timeout"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return nil, fmt.Errorf("binding flag %q: %w", key, err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Host:    v.GetString("host"),
		Port:    v.GetInt("port"),
		Timeout: time.Duration(v.GetInt("timeout")) * time.Second,
	}
	if err := validation.Host(cfg.Host); err != nil {
		return nil, err
	}
	if err := validation.Port(cfg.Port); err != nil {
		return nil, err
	}
	if err := validation.TimeoutSeconds(v.GetInt("timeout")); err != nil {
		return nil, err
	}

	if listOnly {
		return cfg, nil
	}
	tables, err := ParseTables(v.GetString("tables"))
	if err != nil {
		return nil, err
	}
	cfg.Tables = tables
	return cfg, nil
}

// ParseTables splits a comma-separated table list, strips the catalog
// identifiers (they are always checked and never accepted as user input),
// validates each remaining name, and deduplicates preserving first
// occurrence. An empty result is an error: a probe with nothing to check
// is a misconfiguration.
func ParseTables(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no tables given: --tables is required")
	}
	seen := make(map[string]bool)
	var tables []string
	for _, entry := range strings.Split(s, ",") {
		name := strings.TrimSpace(entry)
		if name == "" || hbase.IsCatalog(name) {
			continue
		}
		if err := validation.TableName(name); err != nil {
			return nil, err
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		tables = append(tables, name)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables left to check: catalog tables are always checked and must not be passed via --tables")
	}
	return tables, nil
}
