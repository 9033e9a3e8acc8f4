// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lcances/shapz-nft-game/client"
	"github.com/lcances/shapz-nft-game/parser"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] <account>",
	Short: "Reads a ledger account",
	RunE:  balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	addr, err := parser.ParseAddress(args[0])
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	a, exists, err := cli.Account(addr)
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("account %s does not exist", addr.Hex())
		return nil
	}
	color.Cyan("Account=%s Mint=%s Authority=%s Balance=%d", addr.Hex(), a.Mint.Hex(), a.Authority.Hex(), a.Balance)
	return nil
}
