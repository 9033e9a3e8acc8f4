// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "errors"

var (
	ErrAccountMissing      = errors.New("account missing")
	ErrAccountExists       = errors.New("account already exists")
	ErrUnauthorized        = errors.New("authority does not control account")
	ErrInvalidAuthority    = errors.New("invalid authority")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrMintMismatch        = errors.New("accounts hold different mints")
	ErrNonActionable       = errors.New("transfer is non-actionable")
)
