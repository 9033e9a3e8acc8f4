// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/client"
)

var unstakeCmd = &cobra.Command{
	Use:   "unstake [options] <[owner/]asset id>",
	Short: "Returns a staked asset to its owner",
	Long: `
Returns custody of the asset account to its owner and removes the staking
record. Reward accrued since the last claim is forfeited, so claim first.

$ staking-cli unstake 0x4000000000000000000000000000000000000004 \
--delegate=0xd00000000000000000000000000000000000000d

`,
	RunE: unstakeFunc,
}

func unstakeFunc(cmd *cobra.Command, args []string) error {
	priv, sender, err := loadKey()
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
	_, r, pending, err := cli.StakeInfo(owner, assetID, delegate)
	if err != nil {
		return err
	}
	if pending > 0 {
		color.Yellow("forfeiting %d unclaimed reward units", pending)
	}
	if _, err := client.BuildSignIssueTx(
		context.Background(),
		cli,
		&chain.Input{Typ: chain.Unstake, Owner: owner, AssetID: assetID, Delegate: delegate},
		priv,
		issueOpts()...,
	); err != nil {
		return err
	}

	a, _, err := cli.Account(r.AssetAccount)
	if err != nil {
		return err
	}
	color.Cyan("AssetAccount=%s Authority=%s", r.AssetAccount.Hex(), a.Authority.Hex())
	return nil
}
