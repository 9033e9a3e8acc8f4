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

var configCmd = &cobra.Command{
	Use:   "config [options] [delegate]",
	Short: "Reads the config record of a delegate",
	RunE:  configFunc,
}

func configFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}
	_, delegate, err := loadKey()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if delegate, err = parser.ParseAddress(args[0]); err != nil {
			return err
		}
	}

	cli := client.New(uri, requestTimeout)
	addr, cfg, err := cli.ConfigInfo(delegate)
	if err != nil {
		return err
	}
	color.Blue("config %s: delegate=%s vault=%s initialized=%t", addr.Hex(), cfg.Delegate.Hex(), cfg.Vault.Hex(), cfg.VaultInitialized)
	return nil
}
