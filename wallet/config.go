// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package wallet loads the local Sui client configuration and key material
// and exposes the read-only session shared by every command.
package wallet

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Env is one network entry of client.yaml.
type Env struct {
	Alias string  `yaml:"alias"`
	Rpc   string  `yaml:"rpc"`
	Ws    *string `yaml:"ws"`
}

// Config mirrors the client.yaml written by the official sui CLI.
type Config struct {
	Keystore struct {
		File string `yaml:"File"`
	} `yaml:"keystore"`
	Envs          []Env  `yaml:"envs"`
	ActiveEnv     string `yaml:"active_env"`
	ActiveAddress string `yaml:"active_address"`
}

// DefaultConfigPath points at the config written by `sui client`.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sui", "sui_config", "client.yaml")
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "read config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WithMessage(err, "parse config")
	}
	if cfg.ActiveAddress == "" {
		return nil, errors.New("config has no active_address")
	}
	if cfg.Keystore.File == "" {
		return nil, errors.New("config has no keystore file")
	}
	return &cfg, nil
}

// RpcUrl resolves the endpoint of the active environment.
func (c *Config) RpcUrl() (string, error) {
	for _, env := range c.Envs {
		if env.Alias == c.ActiveEnv {
			return env.Rpc, nil
		}
	}
	return "", errors.Errorf("active env %q not found in config", c.ActiveEnv)
}
