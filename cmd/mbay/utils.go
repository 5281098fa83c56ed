// Copyright (c) 2024 The MiraiBay developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	tty "github.com/mattn/go-tty"
	cli "gopkg.in/urfave/cli.v1"
)

func initLogger(ctx *cli.Context) {
	verbosity := ctx.GlobalInt(verbosityFlag.Name)
	var level slog.Level
	switch {
	case verbosity >= 4:
		level = slog.LevelDebug
	case verbosity == 3:
		level = slog.LevelInfo
	case verbosity == 2:
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

func readYesNoFromNewTTY(prompt string) (bool, error) {
	t, err := tty.Open()
	if err != nil {
		return false, err
	}
	defer t.Close()
	fmt.Fprint(t.Output(), prompt)
	line, err := t.ReadString()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
