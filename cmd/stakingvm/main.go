// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcances/shapz-nft-game/cmd/stakingvm/version"
)

var rootCmd = &cobra.Command{
	Use:        "stakingvm",
	Short:      "StakingVM agent",
	SuggestFor: []string{"stakingvm"},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd.Flags())
	},
	RunE: runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		version.NewCommand(),
	)
	registerFlags(rootCmd.PersistentFlags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stakingvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
