// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/lcances/shapz-nft-game/ledger"
)

var (
	_ ledger.Authority = SignerAuthority{}
	_ ledger.Authority = &DerivedAuthority{}
)

// SignerAuthority is an identity whose signature was verified by the host.
type SignerAuthority common.Address

func (s SignerAuthority) Identity() (common.Address, error) {
	return common.Address(s), nil
}

// DerivedAuthority proves control of a derived address by presenting the
// inputs it was derived from. No key exists for such an address; the proof is
// checked structurally by re-deriving it.
type DerivedAuthority struct {
	ProgramID common.Address
	Seeds     [][]byte
	Bump      uint8
}

func NewStakeAuthority(programID common.Address, r *StakingRecord, delegate common.Address) *DerivedAuthority {
	return &DerivedAuthority{
		ProgramID: programID,
		Seeds:     StakeSeeds(delegate, r.Owner, r.AssetID),
		Bump:      r.Bump,
	}
}

func NewConfigAuthority(programID common.Address, c *ConfigRecord) *DerivedAuthority {
	return &DerivedAuthority{
		ProgramID: programID,
		Seeds:     ConfigSeeds(c.Delegate),
		Bump:      c.Bump,
	}
}

func (d *DerivedAuthority) Identity() (common.Address, error) {
	seeds := make([][]byte, len(d.Seeds)+1)
	copy(seeds, d.Seeds)
	seeds[len(d.Seeds)] = []byte{d.Bump}
	return CreateDerivedAddress(d.ProgramID, seeds)
}
