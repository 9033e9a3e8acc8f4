// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/client"
	"github.com/lcances/shapz-nft-game/parser"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [options] <vault>",
	Short: "Hands custody of the reward vault to the delegate's config address",
	Long: `
Creates the config record of the key's address and re-assigns the vault
account to the address derived from it. It succeeds once per delegate.

$ staking-cli bootstrap 0x6000000000000000000000000000000000000006
<<COMMENT
success
COMMENT

`,
	RunE: bootstrapFunc,
}

func bootstrapFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	vault, err := parser.ParseAddress(args[0])
	if err != nil {
		return err
	}
	priv, sender, err := loadKey()
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	if _, err := client.BuildSignIssueTx(
		context.Background(),
		cli,
		&chain.Input{Typ: chain.Bootstrap, Vault: vault},
		priv,
		issueOpts()...,
	); err != nil {
		return err
	}

	addr, cfg, err := cli.ConfigInfo(sender)
	if err != nil {
		return err
	}
	color.Cyan("config %s: delegate=%s vault=%s initialized=%t", addr.Hex(), cfg.Delegate.Hex(), cfg.Vault.Hex(), cfg.VaultInitialized)
	return nil
}
