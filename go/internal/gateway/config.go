package gateway

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/labzang/soccer/go/internal/corsutil"
)

// Route forwards every request under Prefix to Target
type Route struct {
	ID          string `yaml:"id"`
	Prefix      string `yaml:"prefix"`
	Target      string `yaml:"target"`
	StripPrefix string `yaml:"strip_prefix"`
}

// Config is the gateway configuration file
type Config struct {
	Port   string           `yaml:"port"`
	CORS   corsutil.Options `yaml:"cors"`
	Routes []Route          `yaml:"routes"`
}

// LoadConfig reads and validates a YAML gateway config
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every route and orders them longest prefix first
func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return fmt.Errorf("gateway config has no routes")
	}
	for i, r := range c.Routes {
		if !strings.HasPrefix(r.Prefix, "/") {
			return fmt.Errorf("route %q: prefix must start with /", r.ID)
		}
		if r.StripPrefix != "" && !strings.HasPrefix(r.Prefix, r.StripPrefix) {
			return fmt.Errorf("route %q: strip_prefix %q is not a prefix of %q", r.ID, r.StripPrefix, r.Prefix)
		}
		u, err := url.Parse(r.Target)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("route %q: invalid target %q", r.ID, r.Target)
		}
		if len(r.Prefix) > 1 {
			c.Routes[i].Prefix = strings.TrimSuffix(r.Prefix, "/")
		}
	}
	sort.SliceStable(c.Routes, func(i, j int) bool {
		return len(c.Routes[i].Prefix) > len(c.Routes[j].Prefix)
	})
	return nil
}

// matches reports whether path falls under the route prefix
func (r Route) matches(path string) bool {
	if r.Prefix == "/" {
		return true
	}
	return path == r.Prefix || strings.HasPrefix(path, r.Prefix+"/")
}

// rewrite removes StripPrefix from path
func (r Route) rewrite(path string) string {
	if r.StripPrefix == "" {
		return path
	}
	out := strings.TrimPrefix(path, r.StripPrefix)
	if !strings.HasPrefix(out, "/") {
		out = "/" + out
	}
	return out
}
