// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wallet

import (
	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/suiclient"
	"github.com/pattonkan/sui-go/suisigner"
)

// Session is the process-wide client state: RPC client, signing identity and
// gas budget. Constructed once at startup, read-only afterwards.
type Session struct {
	Client    *suiclient.ClientImpl
	Signer    *suisigner.Signer
	Address   *sui.Address
	GasBudget uint64
}

// Open builds the session from cfg. rpcOverride, when non-empty, replaces
// the endpoint of the active environment.
func Open(cfg *Config, rpcOverride string, gasBudget uint64) (*Session, error) {
	rpcUrl := rpcOverride
	if rpcUrl == "" {
		var err error
		rpcUrl, err = cfg.RpcUrl()
		if err != nil {
			return nil, err
		}
	}

	signers, err := loadKeystore(cfg.Keystore.File)
	if err != nil {
		return nil, err
	}
	signer, err := signerForAddress(signers, cfg.ActiveAddress)
	if err != nil {
		return nil, err
	}

	return &Session{
		Client:    suiclient.NewClient(rpcUrl),
		Signer:    signer,
		Address:   signer.Address,
		GasBudget: gasBudget,
	}, nil
}
