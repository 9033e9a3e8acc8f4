// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &ClaimTx{}

// ClaimTx pays the reward accrued since the last claim from the delegate's
// vault to the record's reward account.
type ClaimTx struct {
	*BaseTx  `serialize:"true" json:"baseTx"`
	Owner    common.Address `serialize:"true" json:"owner"`
	AssetID  common.Address `serialize:"true" json:"assetId"`
	Delegate common.Address `serialize:"true" json:"delegate"`

	payout uint64
}

func (c *ClaimTx) Execute(t *TransactionContext) error {
	addr, r, err := verifyStake(t, c.Owner, c.AssetID, c.Delegate)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(t, c.Delegate)
	if err != nil {
		return err
	}

	payout, err := r.Pending(t.BlockTime)
	if err != nil {
		return err
	}
	if payout > 0 {
		auth := NewConfigAuthority(t.Genesis.ProgramID, cfg)
		if err := t.Ledger.Transfer(cfg.Vault, r.RewardAccount, payout, auth); err != nil {
			return ledgerFailure(err)
		}
	}
	c.payout = payout

	r.ClaimedAt = t.BlockTime
	return PutStakingRecord(t.Database, addr, r)
}

// Payout is the amount paid by the last successful execution.
func (c *ClaimTx) Payout() uint64 { return c.payout }

func (c *ClaimTx) Copy() UnsignedTransaction {
	return &ClaimTx{
		BaseTx:   c.BaseTx.Copy(),
		Owner:    c.Owner,
		AssetID:  c.AssetID,
		Delegate: c.Delegate,
	}
}

func (c *ClaimTx) Activity() *Activity {
	return &Activity{
		Typ:      Claim,
		Delegate: c.Delegate.Hex(),
		AssetID:  c.AssetID.Hex(),
		Amount:   c.payout,
	}
}
