// Package dnspurgecfg loads tool defaults from a dnspurge.yml config file.
// Flags override config values, which override built-in defaults.
package dnspurgecfg

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	ConfigEnvKey    = "DNSPURGE_CONFIG"
	LogFormatEnvKey = "DNSPURGE_LOG_FORMAT"
)

// ConfigFileName is probed in the working directory when no explicit
// config path is given.
const ConfigFileName = "dnspurge.yml"

// Config holds defaults for purge runs loaded from dnspurge.yml.
type Config struct {
	Version  int     `yaml:"version,omitempty"`
	Endpoint string  `yaml:"endpoint,omitempty"` // purge API endpoint override
	Types    string  `yaml:"types,omitempty"`    // default record type selection
	Delay    float64 `yaml:"delay,omitempty"`    // seconds between requests or submissions
	Threads  int     `yaml:"threads,omitempty"`  // default worker count
	DBURL    string  `yaml:"dbUrl,omitempty"`    // run history store, e.g. sqlite:./dnspurge.db
	Export   Export  `yaml:"export,omitempty"`
	Logging  Logging `yaml:"logging,omitempty"`
}

// Export represents the export configuration from dnspurge.yml
type Export struct {
	Dir string `yaml:"dir,omitempty"` // log file directory (default: working directory)
}

// Logging represents the logging configuration from dnspurge.yml
type Logging struct {
	Format        string `yaml:"format,omitempty"`        // human (default), text, json
	Level         string `yaml:"level,omitempty"`         // debug, info (default), warn, error
	Output        string `yaml:"output,omitempty"`        // "-" or empty for stderr, "none", "auto", or a file path
	Dir           string `yaml:"dir,omitempty"`           // directory for generated log files (default: dnspurge-logs)
	RetentionDays int    `yaml:"retentionDays,omitempty"` // days to keep generated log files (0 disables cleanup)
}

// DelayDuration converts the configured delay in seconds to a Duration.
func (c *Config) DelayDuration() time.Duration {
	return time.Duration(c.Delay * float64(time.Second))
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return &c, nil
}

// Resolve loads the config for a run.
//
// Resolution order:
//  1. path parameter (from --config flag or DNSPURGE_CONFIG env), its
//     absence is an error
//  2. dnspurge.yml in workDir, its absence yields an empty Config
func Resolve(path, workDir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	probe := filepath.Join(workDir, ConfigFileName)
	if _, err := os.Stat(probe); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(probe)
}
