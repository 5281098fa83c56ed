// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"context"
	"log/slog"

	"github.com/fardream/go-bcs/bcs"
	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/pattonkan/sui-go/suiclient"
	"github.com/pkg/errors"
	"github.com/studio-mirai/miraibay-cli/wallet"
)

var logger = slog.With("pkg", "auction")

// Bid splits Amount off the caller's coins and submits it against the target
// auction. Whether the bid is acceptable (minimum increment, auction still
// open) is decided by the contract; the response is returned as-is.
func Bid(ctx context.Context, s *wallet.Session, p BidParams) (*suiclient.SuiTransactionBlockResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	auctionId, err := sui.ObjectIdFromHex(p.AuctionId)
	if err != nil {
		return nil, errors.WithMessage(err, "parse auction id")
	}

	obj, err := s.Client.GetObject(ctx, &suiclient.GetObjectRequest{
		ObjectId: auctionId,
		Options:  &suiclient.SuiObjectDataOptions{ShowOwner: true},
	})
	if err != nil {
		return nil, errors.WithMessage(err, "resolve auction object")
	}
	auctionRef := obj.Data.RefSharedObject()

	coinPage, err := s.Client.GetCoins(ctx, &suiclient.GetCoinsRequest{Owner: s.Address})
	if err != nil {
		return nil, errors.WithMessage(err, "fetch coins")
	}
	coins := suiclient.Coins(coinPage.Data)
	if len(coins) == 0 {
		return nil, errors.New("active address owns no coins")
	}

	pt, err := BuildBidPt(auctionRef, coinInputs(coins), p.Amount)
	if err != nil {
		return nil, err
	}
	return execute(ctx, s, pt, []*sui.ObjectRef{coins.CoinRefs()[len(coins)-1]})
}

// Create submits the auction-construction transaction. The caller is
// expected to have normalized and validated p and collected the user's
// confirmation beforehand.
func Create(ctx context.Context, s *wallet.Session, p CreateParams) (*suiclient.SuiTransactionBlockResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	coinPage, err := s.Client.GetCoins(ctx, &suiclient.GetCoinsRequest{Owner: s.Address})
	if err != nil {
		return nil, errors.WithMessage(err, "fetch gas coins")
	}
	if len(coinPage.Data) == 0 {
		return nil, errors.New("active address owns no coins")
	}

	pt := BuildCreatePt(s.Address, p)
	return execute(ctx, s, pt, []*sui.ObjectRef{coinPage.Data[0].Ref()})
}

func execute(ctx context.Context, s *wallet.Session, pt suiptb.ProgrammableTransaction, gasPayment []*sui.ObjectRef) (*suiclient.SuiTransactionBlockResponse, error) {
	tx := suiptb.NewTransactionData(s.Address, pt, gasPayment, s.GasBudget, suiclient.DefaultGasPrice)
	txBytes, err := bcs.Marshal(tx)
	if err != nil {
		return nil, errors.WithMessage(err, "marshal transaction")
	}

	logger.Debug("submitting transaction", "commands", len(pt.Commands), "gas-budget", s.GasBudget)
	resp, err := s.Client.SignAndExecuteTransaction(ctx, s.Signer, txBytes, &suiclient.SuiTransactionBlockResponseOptions{
		ShowEffects:       true,
		ShowEvents:        true,
		ShowObjectChanges: true,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "execute transaction")
	}
	return resp, nil
}
