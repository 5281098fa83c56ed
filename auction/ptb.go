// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/pattonkan/sui-go/suiclient"
	"github.com/pkg/errors"
)

var (
	moveStdlib   = sui.MustPackageIdFromHex("0x1")
	suiFramework = sui.MustPackageIdFromHex("0x2")

	stringTypeTag = sui.TypeTag{Struct: &sui.StructTag{
		Address: sui.MustObjectIdFromHex("0x1"),
		Module:  "string",
		Name:    "String",
	}}
	auctionTypeTag = sui.TypeTag{Struct: &sui.StructTag{
		Address: sui.MustObjectIdFromHex(PackageId),
		Module:  "auction",
		Name:    "Auction",
	}}
)

// CoinInput is the subset of an owned coin object the builders need.
type CoinInput struct {
	Ref     *sui.ObjectRef
	Balance uint64
}

func coinInputs(coins suiclient.Coins) []CoinInput {
	inputs := make([]CoinInput, 0, len(coins))
	for _, c := range coins {
		inputs = append(inputs, CoinInput{Ref: c.Ref(), Balance: c.Balance.Uint64()})
	}
	return inputs
}

// BuildBidPt assembles the bid transaction: the caller's coins are merged if
// a single one cannot cover the amount, exactly one split produces the
// payment, and the auction::bid entry point consumes the shared auction, the
// payment and the clock.
func BuildBidPt(auctionRef *sui.ObjectRef, coins []CoinInput, amount uint64) (suiptb.ProgrammableTransaction, error) {
	var total uint64
	for _, c := range coins {
		total += c.Balance
	}
	if total < amount {
		return suiptb.ProgrammableTransaction{}, errors.Errorf("not enough balance, have %d MIST, need %d MIST", total, amount)
	}

	ptb := suiptb.NewTransactionDataTransactionBuilder()

	var splitTargetArg suiptb.Argument
	var mergeArgs []suiptb.Argument
	var bal uint64
	for i, c := range coins {
		if bal > amount {
			break
		}
		bal += c.Balance
		if i == 0 {
			splitTargetArg = ptb.MustObj(suiptb.ObjectArg{ImmOrOwnedObject: c.Ref})
		} else {
			mergeArgs = append(mergeArgs, ptb.MustObj(suiptb.ObjectArg{ImmOrOwnedObject: c.Ref}))
		}
	}
	if len(mergeArgs) > 0 {
		ptb.Command(suiptb.Command{
			MergeCoins: &suiptb.ProgrammableMergeCoins{
				Destination: splitTargetArg,
				Sources:     mergeArgs,
			},
		})
	}
	paymentArg := ptb.Command(suiptb.Command{
		SplitCoins: &suiptb.ProgrammableSplitCoins{
			Coin:    splitTargetArg,
			Amounts: []suiptb.Argument{ptb.MustPure(amount)},
		},
	})

	ptb.Command(suiptb.Command{
		MoveCall: &suiptb.ProgrammableMoveCall{
			Package:  packageId,
			Module:   "auction",
			Function: "bid",
			Arguments: []suiptb.Argument{
				ptb.MustObj(suiptb.ObjectArg{SharedObject: &suiptb.SharedObjectArg{
					Id:                   auctionRef.ObjectId,
					InitialSharedVersion: auctionRef.Version,
					Mutable:              true,
				}}),
				paymentArg,
				ptb.MustObj(suiptb.ObjectArg{SharedObject: &suiptb.SharedObjectArg{
					Id:                   sui.SuiObjectIdClock,
					InitialSharedVersion: sui.SuiClockObjectSharedVersion,
					Mutable:              false,
				}}),
			},
		},
	})

	return ptb.Finish(), nil
}

// BuildCreatePt assembles the create transaction: the optional description,
// the auction::new call, publicly sharing the new auction object and
// transferring the manager cap back to the sender.
func BuildCreatePt(sender *sui.Address, p CreateParams) suiptb.ProgrammableTransaction {
	ptb := suiptb.NewTransactionDataTransactionBuilder()

	var descriptionArg suiptb.Argument
	if p.Description != nil {
		descriptionArg = ptb.Command(suiptb.Command{
			MoveCall: &suiptb.ProgrammableMoveCall{
				Package:       moveStdlib,
				Module:        "option",
				Function:      "some",
				TypeArguments: []sui.TypeTag{stringTypeTag},
				Arguments:     []suiptb.Argument{ptb.MustPure(*p.Description)},
			},
		})
	} else {
		descriptionArg = ptb.Command(suiptb.Command{
			MoveCall: &suiptb.ProgrammableMoveCall{
				Package:       moveStdlib,
				Module:        "option",
				Function:      "none",
				TypeArguments: []sui.TypeTag{stringTypeTag},
			},
		})
	}

	newArg := ptb.Command(suiptb.Command{
		MoveCall: &suiptb.ProgrammableMoveCall{
			Package:  packageId,
			Module:   "auction",
			Function: "new",
			Arguments: []suiptb.Argument{
				ptb.MustPure(p.Name),
				descriptionArg,
				ptb.MustPure(p.StartTs),
				ptb.MustPure(p.EndTs),
				ptb.MustPure(p.ReservePrice),
				ptb.MustPure(p.StartingPrice),
				ptb.MustPure(p.MinBidIncrement),
			},
		},
	})
	auctionArg := nestedResult(newArg, 0)
	capArg := nestedResult(newArg, 1)

	ptb.Command(suiptb.Command{
		MoveCall: &suiptb.ProgrammableMoveCall{
			Package:       suiFramework,
			Module:        "transfer",
			Function:      "public_share_object",
			TypeArguments: []sui.TypeTag{auctionTypeTag},
			Arguments:     []suiptb.Argument{auctionArg},
		},
	})
	ptb.Command(suiptb.Command{
		TransferObjects: &suiptb.ProgrammableTransferObjects{
			Objects: []suiptb.Argument{capArg},
			Address: ptb.MustPure(sender),
		},
	})

	return ptb.Finish()
}

// nestedResult references the i-th return value of a multi-result command.
func nestedResult(cmd suiptb.Argument, i uint16) suiptb.Argument {
	return suiptb.Argument{NestedResult: &suiptb.NestedResult{Cmd: *cmd.Result, Result: i}}
}
