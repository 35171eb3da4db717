package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julien-sobczak/the-dreamwriter/pkg/resync"
	"github.com/pelletier/go-toml/v2"
)

// How many parent directories to traverse before giving up searching for a .dream directory
const maxDepth = 10

// Default .dream/config content
const DefaultConfig = `
[analysis]
min-delay="1.5s"
max-delay="2.5s"

[background]
interval="5s"

[journal]
dir="journal"
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Analysis   ConfigAnalysis
	Background ConfigBackground
	Journal    ConfigJournal
}
type ConfigAnalysis struct {
	MinDelay string `toml:"min-delay"`
	MaxDelay string `toml:"max-delay"`
}
type ConfigBackground struct {
	Interval string `toml:"interval"`
}
type ConfigJournal struct {
	// Relative paths are resolved from the root directory
	Dir string `toml:"dir"`
}

/* Main config */

type Config struct {
	// Absolute directory containing the .dream sub-directory (or the working directory when missing)
	RootDirectory string

	// .dream/config content
	ConfigFile ConfigFile

	minDelay time.Duration
	maxDelay time.Duration
	interval time.Duration
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		home := currentHome()
		configSingleton, err = ReadConfigFromDirectory(home)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
		if configSingleton == nil {
			// No .dream directory. Fall back to the defaults.
			configSingleton, err = NewConfig(home, DefaultConfig)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Default configuration is broken: %v\n", err)
				os.Exit(1)
			}
		}
	})
	return configSingleton
}

// ResetConfig forces the configuration to be read again.
func ResetConfig() {
	configOnce.Reset()
	configSingleton = nil
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes. Ex:
	//
	//   $ env DREAM_HOME=./examples go run ./cmd/dream analyze ...
	if path, ok := os.LookupEnv("DREAM_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $DREAM_HOME")
			os.Exit(1)
		}
		if _, err := os.Stat(abspath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Path in $DREAM_HOME undefined")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// NewConfig parses and checks the given config file content.
func NewConfig(rootDirectory string, content string) (*Config, error) {
	configFile, err := parseConfigFile(content)
	if err != nil {
		return nil, err
	}
	config := &Config{
		RootDirectory: rootDirectory,
		ConfigFile:    *configFile,
	}
	if err := config.Check(); err != nil {
		return nil, err
	}
	return config, nil
}

// ReadConfigFromDirectory loads the configuration by searching for a .dream directory in the given directory
// or any parent directories. It returns nil when no directory is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath := path
	i := 0 // Safeguard to not go up too far
	for {
		i++
		if i > maxDepth {
			return nil, nil
		}
		dreamPath := filepath.Join(rootPath, ".dream")
		_, err := os.Stat(dreamPath)
		if os.IsNotExist(err) {
			parent := filepath.Dir(rootPath)
			if parent == rootPath {
				// Root directory detected
				return nil, nil
			}
			rootPath = parent
		} else if err != nil {
			return nil, fmt.Errorf("error while searching for configuration directory: %v", err)
		} else {
			break
		}
	}

	// Check for .dream/config
	configPath := filepath.Join(rootPath, ".dream", "config")
	_, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return NewConfig(rootPath, DefaultConfig)
	} else if err != nil {
		return nil, fmt.Errorf("failed to check for .dream/config file: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .dream/config file: %v", err)
	}
	config, err := NewConfig(rootPath, string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse .dream/config file: %v", err)
	}
	return config, nil
}

// InitConfigFromDirectory creates the .dream configuration directory with the default config file.
func InitConfigFromDirectory(path string) (*Config, error) {
	dreamPath := filepath.Join(path, ".dream")
	if _, err := os.Stat(dreamPath); err == nil {
		// Do not override current configuration
		return nil, fmt.Errorf("current configuration detected")
	}

	if err := os.Mkdir(dreamPath, 0755); err != nil {
		return nil, err
	}
	configPath := filepath.Join(dreamPath, "config")
	if err := os.WriteFile(configPath, []byte(strings.TrimSpace(DefaultConfig)+"\n"), 0644); err != nil {
		return nil, err
	}

	// Reread configuration
	return ReadConfigFromDirectory(path)
}

func parseConfigFile(content string) (*ConfigFile, error) {
	// Start from defaults so that a partial file is accepted
	var result ConfigFile
	if err := decodeConfigFile(DefaultConfig, &result); err != nil {
		return nil, err
	}
	if err := decodeConfigFile(content, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func decodeConfigFile(content string, result *ConfigFile) error {
	d := toml.NewDecoder(strings.NewReader(content))
	d.DisallowUnknownFields()
	return d.Decode(result)
}

// Check validates the settings and caches the parsed durations.
func (c *Config) Check() error {
	var err error
	c.minDelay, err = parsePositiveDuration("analysis.min-delay", c.ConfigFile.Analysis.MinDelay)
	if err != nil {
		return err
	}
	c.maxDelay, err = parsePositiveDuration("analysis.max-delay", c.ConfigFile.Analysis.MaxDelay)
	if err != nil {
		return err
	}
	if c.minDelay > c.maxDelay {
		return fmt.Errorf("analysis.min-delay %s must not exceed analysis.max-delay %s", c.minDelay, c.maxDelay)
	}
	c.interval, err = parsePositiveDuration("background.interval", c.ConfigFile.Background.Interval)
	if err != nil {
		return err
	}
	if c.interval == 0 {
		return fmt.Errorf("background.interval must be strictly positive")
	}
	if strings.TrimSpace(c.ConfigFile.Journal.Dir) == "" {
		return fmt.Errorf("journal.dir must not be empty")
	}
	return nil
}

func parsePositiveDuration(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q for %s: %v", value, name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q for %s", value, name)
	}
	return d, nil
}

// MinDelay returns the minimum thinking time before showing an analysis.
func (c *Config) MinDelay() time.Duration {
	return c.minDelay
}

// MaxDelay returns the maximum thinking time before showing an analysis.
func (c *Config) MaxDelay() time.Duration {
	return c.maxDelay
}

// BackgroundInterval returns the time between two background images.
func (c *Config) BackgroundInterval() time.Duration {
	return c.interval
}

// JournalDir returns the absolute directory where analyses are saved.
func (c *Config) JournalDir() string {
	dir := c.ConfigFile.Journal.Dir
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.RootDirectory, dir)
}
