// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Genesis Correctness
	ErrInvalidDecimals    = errors.New("invalid reward decimals")
	ErrInexactAccrualRate = errors.New("daily reward does not divide into a whole per-second rate")
	ErrInvalidProgramID   = errors.New("invalid program id")

	// Tx Correctness
	ErrInvalidMagic     = errors.New("invalid magic")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrDuplicateTx      = errors.New("duplicate transaction")
	ErrInvalidAccount   = errors.New("invalid account")
	ErrInvalidType      = errors.New("invalid type")

	// Derivation
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")
	ErrInvalidSeeds          = errors.New("provided seeds do not result in a valid address")
	ErrNoViableBump          = errors.New("unable to find a viable bump")

	// Storage
	ErrInvalidRecordKind = errors.New("stored value is not of the expected record kind")

	// Execution Correctness
	ErrAlreadyInitialized   = errors.New("config already initialized")
	ErrVaultNotInitialized  = errors.New("reward vault not initialized")
	ErrRecordExists         = errors.New("staking record already exists")
	ErrRecordNotFound       = errors.New("staking record not found")
	ErrNotOwner             = errors.New("signer is not the owner")
	ErrAssetMismatch        = errors.New("asset does not match record")
	ErrInvalidRewardAccount = errors.New("invalid reward account")
	ErrInvalidElapsed       = errors.New("clock moved behind last claim")
	ErrPayoutOverflow       = errors.New("payout overflows")
	ErrLedgerFailure        = errors.New("ledger rejected request")
)

// ledgerError marks a rejection by the custody ledger while keeping the
// ledger's own error reachable through errors.Is/As.
type ledgerError struct {
	err error
}

func (e *ledgerError) Error() string { return ErrLedgerFailure.Error() + ": " + e.err.Error() }

func (e *ledgerError) Is(target error) bool { return target == ErrLedgerFailure }

func (e *ledgerError) Unwrap() error { return e.err }

func ledgerFailure(err error) error {
	if err == nil {
		return nil
	}
	return &ledgerError{err: err}
}
