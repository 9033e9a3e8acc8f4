// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func validAccounts(accounts ...common.Address) error {
	for _, a := range accounts {
		if a == (common.Address{}) {
			return ErrInvalidAccount
		}
	}
	return nil
}

// verifyStake loads the record for (owner, assetID) under delegate and
// checks the sender may act on it.
func verifyStake(
	t *TransactionContext,
	owner common.Address,
	assetID common.Address,
	delegate common.Address,
) (common.Address, *StakingRecord, error) {
	if err := validAccounts(owner, assetID, delegate); err != nil {
		return common.Address{}, nil, err
	}
	addr, _, err := StakeAddress(t.Genesis.ProgramID, delegate, owner, assetID)
	if err != nil {
		return common.Address{}, nil, err
	}
	r, exists, err := GetStakingRecord(t.Database, addr)
	if err != nil {
		return common.Address{}, nil, err
	}
	if !exists {
		return common.Address{}, nil, fmt.Errorf("%w: %s", ErrRecordNotFound, addr)
	}
	if r.Owner != t.Sender {
		return common.Address{}, nil, ErrNotOwner
	}
	// Unreachable while the record key is derived from assetID; kept so a
	// record stored under the wrong key is still refused.
	if r.AssetID != assetID {
		return common.Address{}, nil, ErrAssetMismatch
	}
	return addr, r, nil
}

func loadConfig(t *TransactionContext, delegate common.Address) (*ConfigRecord, error) {
	addr, _, err := ConfigAddress(t.Genesis.ProgramID, delegate)
	if err != nil {
		return nil, err
	}
	cfg, exists, err := GetConfigRecord(t.Database, addr)
	if err != nil {
		return nil, err
	}
	if !exists || !cfg.VaultInitialized {
		return nil, ErrVaultNotInitialized
	}
	return cfg, nil
}
