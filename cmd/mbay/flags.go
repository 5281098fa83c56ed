// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"github.com/studio-mirai/miraibay-cli/auction"
	"github.com/studio-mirai/miraibay-cli/wallet"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Value: wallet.DefaultConfigPath(),
		Usage: "path to the sui client.yaml holding the signing identity",
	}
	rpcFlag = cli.StringFlag{
		Name:  "rpc",
		Usage: "override the RPC endpoint of the active environment",
	}
	gasBudgetFlag = cli.Uint64Flag{
		Name:  "gas-budget",
		Value: auction.DefaultGasBudget,
		Usage: "gas budget in MIST",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "log verbosity (0-9)",
	}
	descriptionFlag = cli.StringFlag{
		Name:  "description",
		Usage: "description of the auction",
	}
	startTsFlag = cli.Uint64Flag{
		Name:  "start-ts",
		Usage: "start timestamp of the auction in ms since epoch, 0 means now",
	}
	endTsFlag = cli.Uint64Flag{
		Name:  "end-ts",
		Usage: "end timestamp of the auction in ms since epoch",
	}
	reservePriceFlag = cli.Uint64Flag{
		Name:  "reserve-price",
		Usage: "reserve price of the auction in MIST (1 SUI = 1_000_000_000 MIST)",
	}
	startingPriceFlag = cli.Uint64Flag{
		Name:  "starting-price",
		Usage: "starting price of the auction in MIST (1 SUI = 1_000_000_000 MIST)",
	}
	minBidIncrementFlag = cli.Uint64Flag{
		Name:  "min-bid-increment",
		Usage: "minimum bid increment of the auction in MIST (1 SUI = 1_000_000_000 MIST)",
	}
	yesFlag = cli.BoolFlag{
		Name:  "yes",
		Usage: "skip the confirmation prompt",
	}
)
