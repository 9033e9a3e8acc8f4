// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Input is the JSON form of an unsigned transaction.
type Input struct {
	Typ           string         `json:"type"`
	Vault         common.Address `json:"vault,omitempty"`
	AssetAccount  common.Address `json:"assetAccount,omitempty"`
	AssetID       common.Address `json:"assetId,omitempty"`
	RewardAccount common.Address `json:"rewardAccount,omitempty"`
	Delegate      common.Address `json:"delegate,omitempty"`
	Owner         common.Address `json:"owner,omitempty"`
}

func (i *Input) Decode() (UnsignedTransaction, error) {
	switch i.Typ {
	case Bootstrap:
		return &BootstrapTx{
			BaseTx: &BaseTx{},
			Vault:  i.Vault,
		}, nil
	case Stake:
		return &StakeTx{
			BaseTx:        &BaseTx{},
			AssetAccount:  i.AssetAccount,
			AssetID:       i.AssetID,
			RewardAccount: i.RewardAccount,
			Delegate:      i.Delegate,
		}, nil
	case Claim:
		return &ClaimTx{
			BaseTx:   &BaseTx{},
			Owner:    i.Owner,
			AssetID:  i.AssetID,
			Delegate: i.Delegate,
		}, nil
	case Unstake:
		return &UnstakeTx{
			BaseTx:   &BaseTx{},
			Owner:    i.Owner,
			AssetID:  i.AssetID,
			Delegate: i.Delegate,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, i.Typ)
	}
}
