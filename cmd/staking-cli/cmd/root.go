// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "staking-cli" implements stakingvm client operation interface.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600
)

var (
	privateKeyFile string
	uri            string
	delegateAddr   string
	verbose        bool
	workDir        string

	rootCmd = &cobra.Command{
		Use:        "staking-cli",
		Short:      "StakingVM CLI",
		SuggestFor: []string{"staking-cli", "stakingcli", "stakingctl"},
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		genesisCmd,
		bootstrapCmd,
		stakeCmd,
		claimCmd,
		unstakeCmd,
		infoCmd,
		configCmd,
		stakedCmd,
		balanceCmd,
		deriveCmd,
		activityCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".staking-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9650",
		"RPC endpoint for VM",
	)
	rootCmd.PersistentFlags().StringVar(
		&delegateAddr,
		"delegate",
		"",
		"delegate whose vault pays the rewards (defaults to the key's address)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"Print verbose information about operations",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
