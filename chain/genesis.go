// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	safemath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lcances/shapz-nft-game/ledger"
)

const (
	secondsPerDay = 86400

	MaxRewardDecimals = 18
)

// Allocation opens a ledger account when the genesis is loaded.
type Allocation struct {
	Account   common.Address `json:"account"`
	Mint      common.Address `json:"mint"`
	Authority common.Address `json:"authority"`
	Balance   uint64         `json:"balance"`
}

// Genesis holds the deployment parameters. It is resolved once when the host
// starts and passed to every transaction.
type Genesis struct {
	Magic uint64 `json:"magic"`

	// ProgramID scopes every derived address to this deployment.
	ProgramID common.Address `json:"programId"`

	// RewardDecimals is the exponent of the reward mint's smallest
	// denomination; DailyReward is in whole reward tokens.
	RewardDecimals uint8  `json:"rewardDecimals"`
	DailyReward    uint64 `json:"dailyReward"`

	Allocations []*Allocation `json:"allocations,omitempty"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic:     1,
		ProgramID: common.HexToAddress("0x5ac1a3d9e2c0f0a1b6e4d7c8a9b0c1d2e3f4a5b6"),

		// The reward mint has 9 decimals; 864
		// tokens a day is exactly 10_000_000 base units a second.
		RewardDecimals: 9,
		DailyReward:    864,
	}
}

// AccrualRate is the number of reward base units earned per staked second:
// DailyReward * 10^RewardDecimals / 86400. Parameters that do not divide
// exactly are rejected rather than truncated.
func (g *Genesis) AccrualRate() (uint64, error) {
	if g.RewardDecimals > MaxRewardDecimals {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDecimals, g.RewardDecimals)
	}
	scale := uint64(1)
	for i := uint8(0); i < g.RewardDecimals; i++ {
		scale *= 10
	}
	daily, err := safemath.Mul64(g.DailyReward, scale)
	if err != nil {
		return 0, err
	}
	if daily%secondsPerDay != 0 {
		return 0, fmt.Errorf("%w: %d base units a day", ErrInexactAccrualRate, daily)
	}
	return daily / secondsPerDay, nil
}

func (g *Genesis) Verify() error {
	if g.ProgramID == (common.Address{}) {
		return ErrInvalidProgramID
	}
	_, err := g.AccrualRate()
	return err
}

// Load opens the genesis allocations in [db]. It is a no-op if a genesis was
// already loaded into [db].
func (g *Genesis) Load(db database.Database) error {
	loaded, err := HasGenesis(db)
	if err != nil {
		return err
	}
	if loaded {
		return nil
	}
	l := ledger.New(db)
	for _, alloc := range g.Allocations {
		if err := l.CreateAccount(alloc.Account, &ledger.Account{
			Mint:      alloc.Mint,
			Authority: alloc.Authority,
			Balance:   alloc.Balance,
		}); err != nil {
			return fmt.Errorf("%w: allocation %s", err, alloc.Account)
		}
	}
	return SetGenesis(db)
}
