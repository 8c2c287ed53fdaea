// Package config loads muxpick configuration.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the caller)
//  2. Environment variables (MUXPICK_*)
//  3. Config file (~/.config/muxpick/config.yaml or MUXPICK_CONFIG)
//  4. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultPlaceholder = "letter to attach, name to create, enter for a new session"

type HostConfig struct {
	Host   string `yaml:"host"`
	User   string `yaml:"user"`
	SSHKey string `yaml:"ssh_key"`
}

type Config struct {
	// Authority is tmux, shpool, zmx, or empty/auto to detect.
	Authority   string                `yaml:"authority"`
	Binary      string                `yaml:"binary"`
	Placeholder string                `yaml:"placeholder"`
	Host        string                `yaml:"host"`
	Hosts       map[string]HostConfig `yaml:"hosts"`

	// ConfigFile is the path that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Authority:   "auto",
		Placeholder: defaultPlaceholder,
	}
}

// DefaultPath returns ~/.config/muxpick/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "muxpick", "config.yaml"), nil
}

// Load reads configuration from path (or the default location when empty)
// and applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv("MUXPICK_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fileCfg Config
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
			cfg.ConfigFile = path
			mergeFile(cfg, &fileCfg)
		case os.IsNotExist(err) && !explicit:
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	applyEnv(cfg)
	expandHosts(cfg)
	return cfg, nil
}

func mergeFile(cfg, file *Config) {
	if file.Authority != "" {
		cfg.Authority = file.Authority
	}
	if file.Binary != "" {
		cfg.Binary = file.Binary
	}
	if file.Placeholder != "" {
		cfg.Placeholder = file.Placeholder
	}
	if file.Host != "" {
		cfg.Host = file.Host
	}
	if len(file.Hosts) > 0 {
		cfg.Hosts = file.Hosts
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MUXPICK_AUTHORITY"); v != "" {
		cfg.Authority = v
	}
	if v := os.Getenv("MUXPICK_BINARY"); v != "" {
		cfg.Binary = v
	}
	if v := os.Getenv("MUXPICK_HOST"); v != "" {
		cfg.Host = v
	}
}

// expandHosts expands ~ in ssh_key paths.
func expandHosts(cfg *Config) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	for name, h := range cfg.Hosts {
		if len(h.SSHKey) > 0 && h.SSHKey[0] == '~' {
			h.SSHKey = filepath.Join(home, h.SSHKey[1:])
		}
		cfg.Hosts[name] = h
	}
}

// LookupHost returns the host entry for a nickname.
func (c *Config) LookupHost(nickname string) (HostConfig, error) {
	h, ok := c.Hosts[nickname]
	if !ok {
		return HostConfig{}, fmt.Errorf("unknown host %q (add it under hosts: in %s)", nickname, c.describeFile())
	}
	if h.Host == "" {
		h.Host = nickname
	}
	return h, nil
}

func (c *Config) describeFile() string {
	if c.ConfigFile != "" {
		return c.ConfigFile
	}
	return "~/.config/muxpick/config.yaml"
}
