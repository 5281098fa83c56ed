// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package auction builds and submits transactions against the MiraiBay
// auction contract.
package auction

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// PackageId is the deployed MiraiBay contract package.
	PackageId = "0x34d656894723daac48f3f825ae3b35c428e7b4cb5c65b08bb33349475a1e23ac"

	// DefaultGasBudget caps the network fee of one submission, in MIST.
	DefaultGasBudget = 1_000_000_000

	// MistPerSui converts between the display denomination and the
	// contract's native units.
	MistPerSui = 1_000_000_000
)

var packageId = sui.MustPackageIdFromHex(PackageId)

// BidParams describes one bid submission.
type BidParams struct {
	AuctionId string
	Amount    uint64 // in MIST
}

func (p *BidParams) Validate() error {
	if _, err := sui.ObjectIdFromHex(p.AuctionId); err != nil {
		return errors.WithMessage(err, "parse auction id")
	}
	if p.Amount == 0 {
		return errors.New("bid amount must be positive")
	}
	return nil
}

// CreateParams describes one auction to be created. Timestamps are in ms
// since epoch, prices in MIST.
type CreateParams struct {
	Name            string
	Description     *string
	StartTs         uint64
	EndTs           uint64
	ReservePrice    uint64
	StartingPrice   uint64
	MinBidIncrement uint64
}

// Normalize substitutes now for a zero start timestamp and drops an empty
// description so it becomes the "none" option variant.
func (p *CreateParams) Normalize(now time.Time) {
	if p.StartTs == 0 {
		p.StartTs = uint64(now.UnixMilli())
	}
	if p.Description != nil && *p.Description == "" {
		p.Description = nil
	}
}

// Validate expects a normalized receiver, so the ordering check also covers
// a substituted start timestamp.
func (p *CreateParams) Validate() error {
	if p.Name == "" {
		return errors.New("auction name must not be empty")
	}
	if p.StartTs == 0 {
		return errors.New("start timestamp must be normalized first")
	}
	if p.StartTs > p.EndTs {
		return errors.New("start timestamp must be before end timestamp")
	}
	return nil
}

// Summary renders the create parameters for the confirmation prompt.
func Summary(p CreateParams) string {
	description := "<none>"
	if p.Description != nil {
		description = *p.Description
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Description: %s\n", description)
	fmt.Fprintf(&b, "Start timestamp: %d (%s)\n", p.StartTs, isoTime(p.StartTs))
	fmt.Fprintf(&b, "End timestamp: %d (%s)\n", p.EndTs, isoTime(p.EndTs))
	fmt.Fprintf(&b, "Reserve price: %s SUI\n", mistToSui(p.ReservePrice))
	return b.String()
}

func isoTime(ms uint64) string {
	return time.UnixMilli(int64(ms)).UTC().Format(time.RFC3339)
}

func mistToSui(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), -9)
}
