// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/parser"
)

var (
	genesisFile string

	programID      string
	rewardDecimals int
	dailyReward    int64

	magic uint64
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
	genesisCmd.PersistentFlags().StringVar(
		&programID,
		"program-id",
		"",
		"address scoping every derived address of the deployment",
	)
	genesisCmd.PersistentFlags().IntVar(
		&rewardDecimals,
		"reward-decimals",
		-1,
		"decimals of the reward mint",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&dailyReward,
		"daily-reward",
		-1,
		"whole reward tokens earned per staked asset per day",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [magic] [allocations file] [options]",
	Short: "Creates a new genesis in the default location",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("invalid args")
		}

		m, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		magic = m
		if magic == 0 {
			return chain.ErrInvalidMagic
		}
		return nil
	},
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	genesis := chain.DefaultGenesis()
	genesis.Magic = magic
	if programID != "" {
		id, err := parser.ParseAddress(programID)
		if err != nil {
			return err
		}
		genesis.ProgramID = id
	}
	if rewardDecimals >= 0 {
		genesis.RewardDecimals = uint8(rewardDecimals)
	}
	if dailyReward >= 0 {
		genesis.DailyReward = uint64(dailyReward)
	}

	a, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	allocs := []*chain.Allocation{}
	if err := json.Unmarshal(a, &allocs); err != nil {
		return err
	}
	genesis.Allocations = allocs
	if err := genesis.Verify(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	rate, _ := genesis.AccrualRate()
	color.Green("created genesis (rate=%d/s) and saved to %s", rate, genesisFile)
	return nil
}
