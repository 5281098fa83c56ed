// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wallet

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempKeystore(t *testing.T, entries []string) string {
	t.Helper()
	data, err := json.Marshal(entries)
	assert.Nil(t, err)
	path := filepath.Join(t.TempDir(), "sui.keystore")
	assert.Nil(t, os.WriteFile(path, data, 0600))
	return path
}

func ed25519Entry(seedByte byte) string {
	raw := append([]byte{ed25519SchemeFlag}, bytes.Repeat([]byte{seedByte}, 32)...)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestLoadKeystore(t *testing.T) {
	signers, err := loadKeystore(writeTempKeystore(t, []string{ed25519Entry(1), ed25519Entry(2)}))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(signers))
	for _, s := range signers {
		assert.NotNil(t, s.Address)
	}
}

func TestLoadKeystoreSkipsOtherSchemes(t *testing.T) {
	secp256k1 := base64.StdEncoding.EncodeToString(append([]byte{0x01}, bytes.Repeat([]byte{3}, 32)...))
	signers, err := loadKeystore(writeTempKeystore(t, []string{secp256k1, ed25519Entry(1)}))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(signers))
}

func TestLoadKeystoreRejectsBadEntries(t *testing.T) {
	_, err := loadKeystore(writeTempKeystore(t, []string{"%%%not-base64%%%"}))
	assert.Error(t, err)

	short := base64.StdEncoding.EncodeToString([]byte{0x00, 0x01, 0x02})
	_, err = loadKeystore(writeTempKeystore(t, []string{short}))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "sui.keystore")
	assert.Nil(t, os.WriteFile(path, []byte("{not json"), 0600))
	_, err = loadKeystore(path)
	assert.Error(t, err)
}

func TestSignerForAddress(t *testing.T) {
	signers, err := loadKeystore(writeTempKeystore(t, []string{ed25519Entry(1)}))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(signers))

	// the derived address is the only match
	s, err := signerForAddress(signers, signers[0].Address.String())
	assert.Nil(t, err)
	assert.Equal(t, signers[0], s)

	_, err = signerForAddress(signers, "0x742d6b55e61cbff69302a364960eb579ff51f4f9ca2f9e1f51eac1834a04b021")
	assert.Error(t, err)
}
