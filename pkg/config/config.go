// Package config loads defaults from an optional hostcheck.yaml and
// HOSTCHECK_* environment variables. Command line flags override
// whatever is loaded here.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Agent  AgentConfig  `mapstructure:"agent"`
	Checks ChecksConfig `mapstructure:"checks"`
	Hosts  HostsConfig  `mapstructure:"hosts"`
}

type AgentConfig struct {
	Path       string `mapstructure:"path"`
	Port       int    `mapstructure:"port"`
	MinVersion string `mapstructure:"min_version"`
}

type ChecksConfig struct {
	PingTimeout  int `mapstructure:"ping_timeout"`
	PortTimeout  int `mapstructure:"port_timeout"`
	AgentTimeout int `mapstructure:"agent_timeout"`
}

type HostsConfig struct {
	File string `mapstructure:"file"`
}

func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("hostcheck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("hostcheck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("agent.path", "/opt/OV/bin/bbcutil")
	v.SetDefault("agent.port", 383)
	v.SetDefault("agent.min_version", "")

	v.SetDefault("checks.ping_timeout", 2)
	v.SetDefault("checks.port_timeout", 2)
	v.SetDefault("checks.agent_timeout", 1)

	v.SetDefault("hosts.file", "hosts.txt")
}

func (c *Config) GetPingTimeout() time.Duration {
	return time.Duration(c.Checks.PingTimeout) * time.Second
}

func (c *Config) GetPortTimeout() time.Duration {
	return time.Duration(c.Checks.PortTimeout) * time.Second
}

func (c *Config) GetAgentTimeout() time.Duration {
	return time.Duration(c.Checks.AgentTimeout) * time.Second
}
