// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	safemath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"
)

// StakingRecord holds the accrual state of one staked asset. It lives at the
// address derived from (StakeTag, delegate, owner, asset id) and exists
// exactly as long as the asset is staked.
type StakingRecord struct {
	Owner         common.Address `serialize:"true" json:"owner"`
	AssetAccount  common.Address `serialize:"true" json:"assetAccount"`
	RewardAccount common.Address `serialize:"true" json:"rewardAccount"`
	AssetID       common.Address `serialize:"true" json:"assetId"`

	// AccrualRate is in reward base units per second and is fixed at stake.
	AccrualRate uint64 `serialize:"true" json:"accrualRate"`
	CreatedAt   uint64 `serialize:"true" json:"createdAt"`
	ClaimedAt   uint64 `serialize:"true" json:"claimedAt"`

	Bump uint8 `serialize:"true" json:"bump"`
}

// Pending returns the reward accrued between the last claim and [now].
func (r *StakingRecord) Pending(now uint64) (uint64, error) {
	if now < r.ClaimedAt {
		return 0, fmt.Errorf("%w: now=%d claimedAt=%d", ErrInvalidElapsed, now, r.ClaimedAt)
	}
	payout, err := safemath.Mul64(now-r.ClaimedAt, r.AccrualRate)
	if err != nil {
		return 0, fmt.Errorf("%w: %d seconds at %d", ErrPayoutOverflow, now-r.ClaimedAt, r.AccrualRate)
	}
	return payout, nil
}

// ConfigRecord is created once per delegate by Bootstrap.
type ConfigRecord struct {
	Delegate         common.Address `serialize:"true" json:"delegate"`
	Vault            common.Address `serialize:"true" json:"vault"`
	VaultInitialized bool           `serialize:"true" json:"vaultInitialized"`
	Bump             uint8          `serialize:"true" json:"bump"`
}
