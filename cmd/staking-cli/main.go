// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "staking-cli" implements stakingvm client operation interface.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/lcances/shapz-nft-game/cmd/staking-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("staking-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
