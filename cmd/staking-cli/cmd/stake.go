// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/client"
	"github.com/lcances/shapz-nft-game/parser"
)

var stakeCmd = &cobra.Command{
	Use:   "stake [options] <asset account> <asset id> <reward account>",
	Short: "Stakes the asset held by the given account",
	Long: `
Opens a staking record for the asset and moves custody of the asset account
to the record's derived address. Rewards accrue from now on and are paid to
the reward account.

$ staking-cli stake \
0x7000000000000000000000000000000000000007 \
0x4000000000000000000000000000000000000004 \
0x8000000000000000000000000000000000000008 \
--delegate=0xd00000000000000000000000000000000000000d

`,
	RunE: stakeFunc,
}

func stakeFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	assetAccount, err := parser.ParseAddress(args[0])
	if err != nil {
		return err
	}
	assetID, err := parser.ParseAddress(args[1])
	if err != nil {
		return err
	}
	rewardAccount, err := parser.ParseAddress(args[2])
	if err != nil {
		return err
	}
	priv, sender, err := loadKey()
	if err != nil {
		return err
	}
	delegate, err := getDelegate(sender)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	if _, err := client.BuildSignIssueTx(
		context.Background(),
		cli,
		&chain.Input{
			Typ:           chain.Stake,
			AssetAccount:  assetAccount,
			AssetID:       assetID,
			RewardAccount: rewardAccount,
			Delegate:      delegate,
		},
		priv,
		issueOpts()...,
	); err != nil {
		return err
	}

	addr, r, pending, err := cli.StakeInfo(sender, assetID, delegate)
	if err != nil {
		return err
	}
	client.PPStake(addr, r, pending)
	return nil
}
