// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const clientYaml = `---
keystore:
  File: /home/mirai/.sui/sui_config/sui.keystore
envs:
  - alias: testnet
    rpc: "https://fullnode.testnet.sui.io:443"
    ws: ~
  - alias: mainnet
    rpc: "https://fullnode.mainnet.sui.io:443"
    ws: ~
active_env: testnet
active_address: "0x742d6b55e61cbff69302a364960eb579ff51f4f9ca2f9e1f51eac1834a04b021"
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.yaml")
	assert.Nil(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTempConfig(t, clientYaml))
	assert.Nil(t, err)
	assert.Equal(t, "/home/mirai/.sui/sui_config/sui.keystore", cfg.Keystore.File)
	assert.Equal(t, "testnet", cfg.ActiveEnv)
	assert.Equal(t, "0x742d6b55e61cbff69302a364960eb579ff51f4f9ca2f9e1f51eac1834a04b021", cfg.ActiveAddress)
	assert.Equal(t, 2, len(cfg.Envs))

	url, err := cfg.RpcUrl()
	assert.Nil(t, err)
	assert.Equal(t, "https://fullnode.testnet.sui.io:443", url)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsIncomplete(t *testing.T) {
	_, err := LoadConfig(writeTempConfig(t, "envs: []\nactive_env: testnet\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeTempConfig(t, "active_address: \"0x1\"\nenvs: []\n"))
	assert.Error(t, err)
}

func TestRpcUrlUnknownEnv(t *testing.T) {
	cfg := &Config{ActiveEnv: "devnet"}
	_, err := cfg.RpcUrl()
	assert.Error(t, err)
}
