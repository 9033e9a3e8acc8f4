// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lcances/shapz-nft-game/client"
)

var infoCmd = &cobra.Command{
	Use:   "info [options] <[owner/]asset id>",
	Short: "Reads a staking record and its unclaimed reward",
	RunE:  infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	_, sender, err := loadKey()
	if err != nil {
		return err
	}
	owner, assetID, err := getStakeOp(args, sender)
	if err != nil {
		return err
	}
	delegate, err := getDelegate(sender)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	addr, r, pending, err := cli.StakeInfo(owner, assetID, delegate)
	if err != nil {
		return err
	}
	client.PPStake(addr, r, pending)
	return nil
}
