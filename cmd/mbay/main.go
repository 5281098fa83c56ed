// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pattonkan/sui-go/suiclient"
	"github.com/pkg/errors"
	"github.com/studio-mirai/miraibay-cli/auction"
	"github.com/studio-mirai/miraibay-cli/wallet"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "mbay",
		Usage:     "command-line client for MiraiBay auctions on Sui",
		Copyright: "2024 Studio Mirai",
		Flags: []cli.Flag{
			configFlag,
			rpcFlag,
			gasBudgetFlag,
			verbosityFlag,
		},
		Commands: []cli.Command{
			{
				Name:      "bid",
				Usage:     "bid on an existing auction",
				ArgsUsage: "<auction_id> <amount>",
				Action:    bidAction,
			},
			{
				Name:      "create",
				Usage:     "create a new auction",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					descriptionFlag,
					startTsFlag,
					endTsFlag,
					reservePriceFlag,
					startingPriceFlag,
					minBidIncrementFlag,
					yesFlag,
				},
				Action: createAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bidAction(ctx *cli.Context) error {
	initLogger(ctx)

	if len(ctx.Args()) != 2 {
		return errors.New("bid requires <auction_id> and <amount> arguments")
	}
	amount, err := strconv.ParseUint(ctx.Args().Get(1), 10, 64)
	if err != nil {
		return errors.WithMessage(err, "parse amount")
	}
	p := auction.BidParams{
		AuctionId: ctx.Args().Get(0),
		Amount:    amount,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	session, err := openSession(ctx)
	if err != nil {
		return err
	}
	resp, err := auction.Bid(context.Background(), session, p)
	if err != nil {
		return err
	}
	return printResult(resp)
}

func createAction(ctx *cli.Context) error {
	initLogger(ctx)

	name := ctx.Args().First()
	if name == "" {
		return errors.New("create requires a <name> argument")
	}
	if !ctx.IsSet(startTsFlag.Name) || !ctx.IsSet(endTsFlag.Name) {
		return fmt.Errorf("missing flag, both -%s and -%s are required", startTsFlag.Name, endTsFlag.Name)
	}

	p := auction.CreateParams{
		Name:            name,
		StartTs:         ctx.Uint64(startTsFlag.Name),
		EndTs:           ctx.Uint64(endTsFlag.Name),
		ReservePrice:    ctx.Uint64(reservePriceFlag.Name),
		StartingPrice:   ctx.Uint64(startingPriceFlag.Name),
		MinBidIncrement: ctx.Uint64(minBidIncrementFlag.Name),
	}
	if description := ctx.String(descriptionFlag.Name); description != "" {
		p.Description = &description
	}
	p.Normalize(time.Now())
	if err := p.Validate(); err != nil {
		return err
	}

	fmt.Print(auction.Summary(p))
	if !ctx.Bool(yesFlag.Name) {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return errors.New("stdin is not a terminal, re-run with -yes to skip the confirmation prompt")
		}
		confirmed, err := readYesNoFromNewTTY("Please confirm the auction details [y/N]: ")
		if err != nil {
			return err
		}
		if !confirmed {
			return errors.New("aborted")
		}
	}

	session, err := openSession(ctx)
	if err != nil {
		return err
	}
	resp, err := auction.Create(context.Background(), session, p)
	if err != nil {
		return err
	}
	return printResult(resp)
}

func openSession(ctx *cli.Context) (*wallet.Session, error) {
	cfg, err := wallet.LoadConfig(ctx.GlobalString(configFlag.Name))
	if err != nil {
		return nil, err
	}
	return wallet.Open(cfg, ctx.GlobalString(rpcFlag.Name), ctx.GlobalUint64(gasBudgetFlag.Name))
}

func printResult(resp *suiclient.SuiTransactionBlockResponse) error {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "encode result")
	}
	fmt.Println(string(out))
	return nil
}
