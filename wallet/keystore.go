// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wallet

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"strings"

	"github.com/pattonkan/sui-go/suisigner"
	"github.com/pattonkan/sui-go/suisigner/suicrypto"
	"github.com/pkg/errors"
)

const ed25519SchemeFlag = 0x00

// loadKeystore reads a sui.keystore file, a JSON array of base64 encoded
// flag||seed entries. Non-ed25519 identities are skipped.
func loadKeystore(path string) ([]*suisigner.Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "read keystore")
	}
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.WithMessage(err, "parse keystore")
	}

	signers := make([]*suisigner.Signer, 0, len(entries))
	for i, entry := range entries {
		raw, err := base64.StdEncoding.DecodeString(entry)
		if err != nil {
			return nil, errors.WithMessagef(err, "decode keystore entry %d", i)
		}
		if len(raw) != 33 {
			return nil, errors.Errorf("keystore entry %d has %d bytes, want 33", i, len(raw))
		}
		if raw[0] != ed25519SchemeFlag {
			continue
		}
		signers = append(signers, suisigner.NewSigner(raw[1:], suicrypto.KeySchemeFlagEd25519))
	}
	return signers, nil
}

// signerForAddress picks the keystore identity matching addr.
func signerForAddress(signers []*suisigner.Signer, addr string) (*suisigner.Signer, error) {
	for _, s := range signers {
		if strings.EqualFold(s.Address.String(), addr) {
			return s, nil
		}
	}
	return nil, errors.Errorf("no key for address %s in keystore", addr)
}
