// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32

	maxBump = 255
)

var (
	StakeTag  = []byte("stake")
	ConfigTag = []byte("config")

	derivedAddressMarker = []byte("DerivedAddress")
)

// onCurve reports whether [h] is the x coordinate of a secp256k1 point,
// that is whether some private key has a public key compressing to 0x02‖h.
// Identities here are 20-byte key hashes, so rejecting on-curve candidates
// only keeps the bump semantics of derived addresses. It does not stop a
// key from hashing to a derived address.
func onCurve(h []byte) bool {
	_, err := crypto.DecompressPubkey(append([]byte{0x02}, h...))
	return err == nil
}

func derivationHash(programID common.Address, seeds [][]byte) ([]byte, error) {
	if len(seeds) > MaxSeeds {
		return nil, fmt.Errorf("%w: %d seeds", ErrMaxSeedLengthExceeded, len(seeds))
	}
	h := sha3.NewLegacyKeccak256()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return nil, fmt.Errorf("%w: seed of %d bytes", ErrMaxSeedLengthExceeded, len(s))
		}
		h.Write(s)
	}
	h.Write(programID[:])
	h.Write(derivedAddressMarker)
	return h.Sum(nil), nil
}

// CreateDerivedAddress computes the address for [seeds] (the last of which is
// expected to be the bump) under [programID]. It fails if the candidate lands
// on the curve.
func CreateDerivedAddress(programID common.Address, seeds [][]byte) (common.Address, error) {
	h, err := derivationHash(programID, seeds)
	if err != nil {
		return common.Address{}, err
	}
	if onCurve(h) {
		return common.Address{}, ErrInvalidSeeds
	}
	return common.BytesToAddress(h), nil
}

// FindDerivedAddress searches bumps from 255 down and returns the first
// off-curve address for [seeds] together with its bump.
func FindDerivedAddress(programID common.Address, seeds [][]byte) (common.Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return common.Address{}, 0, fmt.Errorf("%w: %d seeds", ErrMaxSeedLengthExceeded, len(seeds))
	}
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := maxBump; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}
		addr, err := CreateDerivedAddress(programID, withBump)
		switch err {
		case nil:
			return addr, uint8(bump), nil
		case ErrInvalidSeeds:
			continue
		default:
			return common.Address{}, 0, err
		}
	}
	return common.Address{}, 0, ErrNoViableBump
}

func StakeSeeds(delegate, owner, assetID common.Address) [][]byte {
	return [][]byte{StakeTag, delegate.Bytes(), owner.Bytes(), assetID.Bytes()}
}

func ConfigSeeds(delegate common.Address) [][]byte {
	return [][]byte{ConfigTag, delegate.Bytes()}
}

// StakeAddress is both the key of the staking record for (owner, asset) and
// the custody identity holding the staked asset account.
func StakeAddress(programID, delegate, owner, assetID common.Address) (common.Address, uint8, error) {
	return FindDerivedAddress(programID, StakeSeeds(delegate, owner, assetID))
}

// ConfigAddress is both the key of the delegate's config record and the
// custody identity holding the reward vault.
func ConfigAddress(programID, delegate common.Address) (common.Address, uint8, error) {
	return FindDerivedAddress(programID, ConfigSeeds(delegate))
}
