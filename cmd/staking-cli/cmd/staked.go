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

var stakedCmd = &cobra.Command{
	Use:   "staked [options] [owner]",
	Short: "Lists every asset currently staked by the owner",
	RunE:  stakedFunc,
}

func stakedFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}
	_, owner, err := loadKey()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if owner, err = parser.ParseAddress(args[0]); err != nil {
			return err
		}
	}

	cli := client.New(uri, requestTimeout)
	staked, err := cli.Staked(owner)
	if err != nil {
		return err
	}
	if len(staked) == 0 {
		color.Yellow("address %s has nothing staked", owner.Hex())
		return nil
	}
	for _, s := range staked {
		color.Green("%s asset=%s account=%s since=%d", s.Address.Hex(), s.Record.AssetID.Hex(), s.Record.AssetAccount.Hex(), s.Record.CreatedAt)
	}
	return nil
}
