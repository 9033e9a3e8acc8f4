// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/lcances/shapz-nft-game/chain"
)

func PPActivity(a []*chain.Activity) error {
	if len(a) == 0 {
		color.Yellow("no recent activity")
		return nil
	}
	for _, item := range a {
		ts := time.Unix(int64(item.Tmstmp), 0)
		switch item.Typ {
		case chain.Bootstrap:
			color.Magenta("%s [%s] %s delegate=%s vault=%s", ts, item.TxID, item.Typ, item.Sender, item.Account)
		case chain.Stake, chain.Unstake:
			color.Cyan("%s [%s] %s owner=%s asset=%s account=%s delegate=%s", ts, item.TxID, item.Typ, item.Sender, item.AssetID, item.Account, item.Delegate)
		case chain.Claim:
			color.Green("%s [%s] %s owner=%s asset=%s amount=%d delegate=%s", ts, item.TxID, item.Typ, item.Sender, item.AssetID, item.Amount, item.Delegate)
		default:
			color.Red("%s [%s] unknown activity type %q", ts, item.TxID, item.Typ)
		}
	}
	return nil
}

func PPStake(addr common.Address, r *chain.StakingRecord, pending uint64) {
	color.Blue(
		"record %s: owner=%s asset=%s account=%s reward=%s",
		addr.Hex(), r.Owner.Hex(), r.AssetID.Hex(), r.AssetAccount.Hex(), r.RewardAccount.Hex(),
	)
	color.Blue(
		"staked at %v, last claimed at %v, rate=%d/s, pending=%d",
		time.Unix(int64(r.CreatedAt), 0), time.Unix(int64(r.ClaimedAt), 0), r.AccrualRate, pending,
	)
}
