package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultOrganization is the organization listed when none is configured
	DefaultOrganization = "the-road-to-learn-react"
	// DefaultFirst is the number of repositories requested from the organization
	DefaultFirst = 20
	// MaxFirst is the GraphQL connection page limit
	MaxFirst = 100
	// DefaultEndpoint is the public GitHub GraphQL endpoint
	DefaultEndpoint = "https://api.github.com/graphql"
	// DefaultTokenEnv is the environment variable holding the API token
	DefaultTokenEnv = "GITHUB_TOKEN"
	// DefaultTimeout bounds every query and mutation
	DefaultTimeout = 30 * time.Second
)

var (
	ErrMissingOrganization = errors.New("organization is required")
	ErrMissingToken        = errors.New("github token is required")
)

// Config represents the application configuration
type Config struct {
	Version      int            `toml:"version"`
	Organization string         `toml:"organization"`
	First        int            `toml:"first"`
	GitHub       GitHubSettings `toml:"github"`
	UISettings   UISettings     `toml:"ui"`

	// Token is resolved from the environment and never written to disk
	Token string `toml:"-"`
}

// GitHubSettings configures the GraphQL client
type GitHubSettings struct {
	Endpoint string `toml:"endpoint"`
	TokenEnv string `toml:"token_env"`
	Timeout  string `toml:"timeout"` // Go duration string, e.g. "30s"
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowForkCount       bool `toml:"show_fork_count"`
	PruneStaleSelection bool `toml:"prune_stale_selection"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "orgstars", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Normalize fills empty values with defaults and clamps First to the page limit
func (c *Config) Normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.First <= 0 {
		c.First = DefaultFirst
	}
	if c.First > MaxFirst {
		c.First = MaxFirst
	}
	if c.GitHub.Endpoint == "" {
		c.GitHub.Endpoint = DefaultEndpoint
	}
	if c.GitHub.TokenEnv == "" {
		c.GitHub.TokenEnv = DefaultTokenEnv
	}
	if c.GitHub.Timeout == "" {
		c.GitHub.Timeout = DefaultTimeout.String()
	}
}

// Timeout returns the parsed request timeout, falling back to the default
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.GitHub.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Validate checks that the configuration can be used to reach the API
func (c *Config) Validate() error {
	if c.Organization == "" {
		return ErrMissingOrganization
	}
	if c.Token == "" {
		return fmt.Errorf("%w: set %s", ErrMissingToken, c.GitHub.TokenEnv)
	}
	u, err := url.Parse(c.GitHub.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid github endpoint %q", c.GitHub.Endpoint)
	}
	if _, err := time.ParseDuration(c.GitHub.Timeout); err != nil {
		return fmt.Errorf("invalid github timeout %q: %w", c.GitHub.Timeout, err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		Organization: DefaultOrganization,
		First:        DefaultFirst,
		GitHub: GitHubSettings{
			Endpoint: DefaultEndpoint,
			TokenEnv: DefaultTokenEnv,
			Timeout:  DefaultTimeout.String(),
		},
		UISettings: UISettings{
			ShowForkCount: true,
		},
	}
}
