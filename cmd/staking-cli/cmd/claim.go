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

var claimCmd = &cobra.Command{
	Use:   "claim [options] <[owner/]asset id>",
	Short: "Claims the reward accrued by a staked asset",
	Long: `
Pays the reward accrued since the last claim from the delegate's vault to
the record's reward account. The owner defaults to the key's address.

$ staking-cli claim 0x4000000000000000000000000000000000000004 \
--delegate=0xd00000000000000000000000000000000000000d

`,
	RunE: claimFunc,
}

func claimFunc(cmd *cobra.Command, args []string) error {
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
	if _, err := client.BuildSignIssueTx(
		context.Background(),
		cli,
		&chain.Input{Typ: chain.Claim, Owner: owner, AssetID: assetID, Delegate: delegate},
		priv,
		issueOpts()...,
	); err != nil {
		return err
	}

	_, r, _, err := cli.StakeInfo(owner, assetID, delegate)
	if err != nil {
		return err
	}
	b, err := cli.Balance(r.RewardAccount)
	if err != nil {
		return err
	}
	color.Cyan("RewardAccount=%s Balance=%d", r.RewardAccount.Hex(), b)
	return nil
}
