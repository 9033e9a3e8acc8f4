// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &UnstakeTx{}

// UnstakeTx returns custody of the asset account to its owner and removes
// the staking record. Reward accrued since the last claim is forfeited; claim
// first to collect it.
type UnstakeTx struct {
	*BaseTx  `serialize:"true" json:"baseTx"`
	Owner    common.Address `serialize:"true" json:"owner"`
	AssetID  common.Address `serialize:"true" json:"assetId"`
	Delegate common.Address `serialize:"true" json:"delegate"`

	assetAccount common.Address
}

func (u *UnstakeTx) Execute(t *TransactionContext) error {
	addr, r, err := verifyStake(t, u.Owner, u.AssetID, u.Delegate)
	if err != nil {
		return err
	}
	auth := NewStakeAuthority(t.Genesis.ProgramID, r, u.Delegate)
	if err := t.Ledger.ReassignAuthority(r.AssetAccount, auth, r.Owner); err != nil {
		return ledgerFailure(err)
	}
	u.assetAccount = r.AssetAccount
	return DeleteStakingRecord(t.Database, addr, r.Owner)
}

func (u *UnstakeTx) Copy() UnsignedTransaction {
	return &UnstakeTx{
		BaseTx:   u.BaseTx.Copy(),
		Owner:    u.Owner,
		AssetID:  u.AssetID,
		Delegate: u.Delegate,
	}
}

func (u *UnstakeTx) Activity() *Activity {
	a := &Activity{
		Typ:      Unstake,
		Delegate: u.Delegate.Hex(),
		AssetID:  u.AssetID.Hex(),
	}
	if u.assetAccount != (common.Address{}) {
		a.Account = u.assetAccount.Hex()
	}
	return a
}
