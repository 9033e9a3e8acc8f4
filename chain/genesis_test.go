// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lcances/shapz-nft-game/ledger"
)

func TestAccrualRate(t *testing.T) {
	t.Parallel()

	tt := []struct {
		decimals uint8
		daily    uint64
		rate     uint64
		err      error
	}{
		{decimals: 9, daily: 864, rate: 10_000_000},
		{decimals: 0, daily: 86400, rate: 1},
		{decimals: 2, daily: 864, rate: 1},
		{decimals: 9, daily: 0, rate: 0},
		{decimals: 0, daily: 1, err: ErrInexactAccrualRate},
		{decimals: 9, daily: 10, err: ErrInexactAccrualRate},
		{decimals: MaxRewardDecimals + 1, daily: 864, err: ErrInvalidDecimals},
	}
	for i, tv := range tt {
		g := &Genesis{ProgramID: common.Address{0x1}, RewardDecimals: tv.decimals, DailyReward: tv.daily}
		rate, err := g.AccrualRate()
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if rate != tv.rate {
			t.Fatalf("#%d: rate expected %d, got %d", i, tv.rate, rate)
		}
	}

	overflow := &Genesis{ProgramID: common.Address{0x1}, RewardDecimals: MaxRewardDecimals, DailyReward: 1 << 40}
	if _, err := overflow.AccrualRate(); err == nil {
		t.Fatal("expected overflow")
	}
}

func TestGenesisVerify(t *testing.T) {
	t.Parallel()

	if err := DefaultGenesis().Verify(); err != nil {
		t.Fatal(err)
	}
	g := DefaultGenesis()
	g.ProgramID = common.Address{}
	if err := g.Verify(); !errors.Is(err, ErrInvalidProgramID) {
		t.Fatalf("unexpected error %v, expected %v", err, ErrInvalidProgramID)
	}
}

func TestGenesisLoad(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	g.Allocations = []*Allocation{
		{Account: common.Address{0x10}, Mint: common.Address{0x1}, Authority: common.Address{0xd}, Balance: 1000},
	}
	if err := g.Load(db); err != nil {
		t.Fatal(err)
	}
	// loading twice keeps the first allocation untouched
	if err := g.Load(db); err != nil {
		t.Fatal(err)
	}
	bal, err := ledger.New(db).Balance(common.Address{0x10})
	if err != nil {
		t.Fatal(err)
	}
	if bal != 1000 {
		t.Fatalf("balance expected 1000, got %d", bal)
	}
}
