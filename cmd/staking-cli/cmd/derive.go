// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lcances/shapz-nft-game/client"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [options] [[owner/]asset id]",
	Short: "Previews the config and staking addresses",
	RunE:  deriveFunc,
}

func deriveFunc(cmd *cobra.Command, args []string) error {
	_, sender, err := loadKey()
	if err != nil {
		return err
	}
	delegate, err := getDelegate(sender)
	if err != nil {
		return err
	}
	var owner, assetID common.Address
	if len(args) > 0 {
		if owner, assetID, err = getStakeOp(args, sender); err != nil {
			return err
		}
	}

	cli := client.New(uri, requestTimeout)
	d, err := cli.Derive(delegate, owner, assetID)
	if err != nil {
		return err
	}
	color.Blue("config=%s (bump %d)", d.Config.Hex(), d.ConfigBump)
	if d.Stake != nil {
		color.Blue("stake=%s (bump %d)", d.Stake.Hex(), d.StakeBump)
	}
	return nil
}
