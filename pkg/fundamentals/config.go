package fundamentals

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"fintab/pkg/confkit"
	"fintab/pkg/fmp"
)

// Config describes the FMP data source used by the fundamentals service.
type Config struct {
	BaseURL string `yaml:"base_url"`
	// APIKey holds the key directly; APIKeyEnv names an environment variable
	// to read it from instead. Env indirection keeps keys out of yaml files.
	APIKey    string `yaml:"api_key"`
	APIKeyEnv string `yaml:"api_key_env"`

	HTTPTimeoutRaw string        `yaml:"http_timeout"`
	HTTPTimeout    time.Duration `yaml:"-"`
	DefaultLimit   int           `yaml:"default_limit"`
}

// LoadConfig reads configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fundamentals config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	confkit.LoadDotenvOnce()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fundamentals config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal fundamentals config: %w", err)
	}
	if err := cfg.normalise(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalise() error {
	c.BaseURL = strings.TrimSpace(os.ExpandEnv(c.BaseURL))
	c.APIKey = strings.TrimSpace(os.ExpandEnv(c.APIKey))
	c.APIKeyEnv = strings.TrimSpace(c.APIKeyEnv)
	c.HTTPTimeoutRaw = strings.TrimSpace(os.ExpandEnv(c.HTTPTimeoutRaw))

	if c.APIKey == "" && c.APIKeyEnv != "" {
		c.APIKey = strings.TrimSpace(os.Getenv(c.APIKeyEnv))
	}
	if c.HTTPTimeoutRaw != "" {
		d, err := time.ParseDuration(c.HTTPTimeoutRaw)
		if err != nil {
			return fmt.Errorf("fundamentals config: invalid http_timeout %q: %w", c.HTTPTimeoutRaw, err)
		}
		if d <= 0 {
			return fmt.Errorf("fundamentals config: http_timeout must be positive, got %s", d)
		}
		c.HTTPTimeout = d
	}
	if c.DefaultLimit < 0 {
		return fmt.Errorf("fundamentals config: default_limit must not be negative")
	}
	return nil
}

// BuildService instantiates an FMP client and fundamentals service from the
// configuration. The API key is not required here; entry points validate it
// per call so a keyless config can still serve recorded tests.
func (c *Config) BuildService(clientOpts ...fmp.Option) *Service {
	opts := []fmp.Option{}
	if c.BaseURL != "" {
		opts = append(opts, fmp.WithBaseURL(c.BaseURL))
	}
	if c.APIKey != "" {
		opts = append(opts, fmp.WithAPIKey(c.APIKey))
	}
	if c.HTTPTimeout > 0 {
		opts = append(opts, fmp.WithHTTPClient(newHTTPClient(c.HTTPTimeout)))
	}
	opts = append(opts, clientOpts...)

	svcOpts := []ServiceOption{}
	if c.DefaultLimit > 0 {
		svcOpts = append(svcOpts, WithDefaultLimit(c.DefaultLimit))
	}
	return NewService(fmp.NewClient(opts...), svcOpts...)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
