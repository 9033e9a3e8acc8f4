// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &StakeTx{}

// StakeTx deposits the signer's asset: it opens a staking record and moves
// custody of the asset account to the record's derived address.
type StakeTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// AssetAccount holds the asset and must be controlled by the signer.
	AssetAccount common.Address `serialize:"true" json:"assetAccount"`

	// AssetID is the mint of the staked asset.
	AssetID common.Address `serialize:"true" json:"assetId"`

	// RewardAccount receives every payout of the record.
	RewardAccount common.Address `serialize:"true" json:"rewardAccount"`

	Delegate common.Address `serialize:"true" json:"delegate"`
}

func (s *StakeTx) Execute(t *TransactionContext) error {
	if err := validAccounts(s.AssetAccount, s.AssetID, s.RewardAccount, s.Delegate); err != nil {
		return err
	}
	owner := t.Sender
	rate, err := t.Genesis.AccrualRate()
	if err != nil {
		return err
	}
	addr, bump, err := StakeAddress(t.Genesis.ProgramID, s.Delegate, owner, s.AssetID)
	if err != nil {
		return err
	}

	// checked ahead of the ledger: once staked the signer no longer controls
	// the account
	staked, err := HasStakingRecord(t.Database, addr)
	if err != nil {
		return err
	}
	if staked {
		return fmt.Errorf("%w: %s", ErrRecordExists, addr)
	}

	mint, err := t.Ledger.GetMint(s.AssetAccount)
	if err != nil {
		return ledgerFailure(err)
	}
	if mint != s.AssetID {
		return ErrAssetMismatch
	}
	authority, err := t.Ledger.GetAuthority(s.AssetAccount)
	if err != nil {
		return ledgerFailure(err)
	}
	if authority != owner {
		return ErrNotOwner
	}
	if err := checkRewardAccount(t, s.Delegate, s.RewardAccount); err != nil {
		return err
	}

	r := &StakingRecord{
		Owner:         owner,
		AssetAccount:  s.AssetAccount,
		RewardAccount: s.RewardAccount,
		AssetID:       s.AssetID,
		AccrualRate:   rate,
		CreatedAt:     t.BlockTime,
		ClaimedAt:     t.BlockTime,
		Bump:          bump,
	}
	if err := CreateStakingRecord(t.Database, addr, r); err != nil {
		return err
	}
	return ledgerFailure(t.Ledger.ReassignAuthority(s.AssetAccount, SignerAuthority(owner), addr))
}

// checkRewardAccount requires [account] to exist and, once the delegate has a
// vault, to hold the vault's mint so every later payout can land.
func checkRewardAccount(t *TransactionContext, delegate, account common.Address) error {
	mint, err := t.Ledger.GetMint(account)
	if err != nil {
		return fmt.Errorf("%w: reward account %s: %v", ErrInvalidRewardAccount, account, err)
	}
	addr, _, err := ConfigAddress(t.Genesis.ProgramID, delegate)
	if err != nil {
		return err
	}
	cfg, exists, err := GetConfigRecord(t.Database, addr)
	if err != nil {
		return err
	}
	if !exists || !cfg.VaultInitialized {
		return nil
	}
	vaultMint, err := t.Ledger.GetMint(cfg.Vault)
	if err != nil {
		return ledgerFailure(err)
	}
	if mint != vaultMint {
		return fmt.Errorf("%w: reward account %s holds %s, vault pays %s", ErrInvalidRewardAccount, account, mint, vaultMint)
	}
	return nil
}

func (s *StakeTx) Copy() UnsignedTransaction {
	return &StakeTx{
		BaseTx:        s.BaseTx.Copy(),
		AssetAccount:  s.AssetAccount,
		AssetID:       s.AssetID,
		RewardAccount: s.RewardAccount,
		Delegate:      s.Delegate,
	}
}

func (s *StakeTx) Activity() *Activity {
	return &Activity{
		Typ:      Stake,
		Delegate: s.Delegate.Hex(),
		AssetID:  s.AssetID.Hex(),
		Account:  s.AssetAccount.Hex(),
	}
}
