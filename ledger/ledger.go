// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger implements the token ledger the staking program issues
// custody and transfer intents against. Every account holds units of exactly
// one mint and is controlled by exactly one authority.
package ledger

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	safemath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lcances/shapz-nft-game/codec"
)

var bucket = []byte("ledger")

// Authority is presented with every request that spends from or re-assigns
// an account. The ledger only compares the resolved identity with the
// account's current authority; establishing the identity (signature check or
// address re-derivation) is the presenter's job.
type Authority interface {
	Identity() (common.Address, error)
}

type Account struct {
	Mint      common.Address `serialize:"true" json:"mint"`
	Authority common.Address `serialize:"true" json:"authority"`
	Balance   uint64         `serialize:"true" json:"balance"`
}

// Ledger stores accounts under its own bucket of [db]. Binding a Ledger to a
// versiondb layer makes its writes commit or abort together with the caller's.
type Ledger struct {
	db database.Database
}

func New(db database.Database) *Ledger {
	return &Ledger{db: prefixdb.New(bucket, db)}
}

func (l *Ledger) GetAccount(account common.Address) (*Account, bool, error) {
	v, err := l.db.Get(account[:])
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	a := new(Account)
	if _, err := codec.Unmarshal(v, a); err != nil {
		return nil, false, err
	}
	return a, true, nil
}

func (l *Ledger) mustGet(account common.Address) (*Account, error) {
	a, exists, err := l.GetAccount(account)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAccountMissing, account)
	}
	return a, nil
}

func (l *Ledger) put(account common.Address, a *Account) error {
	b, err := codec.Marshal(a)
	if err != nil {
		return err
	}
	return l.db.Put(account[:], b)
}

// CreateAccount opens [account] with the given mint, authority and balance.
func (l *Ledger) CreateAccount(account common.Address, a *Account) error {
	if account == (common.Address{}) || a.Authority == (common.Address{}) {
		return ErrInvalidAuthority
	}
	has, err := l.db.Has(account[:])
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrAccountExists, account)
	}
	return l.put(account, a)
}

func (l *Ledger) GetAuthority(account common.Address) (common.Address, error) {
	a, err := l.mustGet(account)
	if err != nil {
		return common.Address{}, err
	}
	return a.Authority, nil
}

func (l *Ledger) GetMint(account common.Address) (common.Address, error) {
	a, err := l.mustGet(account)
	if err != nil {
		return common.Address{}, err
	}
	return a.Mint, nil
}

func (l *Ledger) Balance(account common.Address) (uint64, error) {
	a, err := l.mustGet(account)
	if err != nil {
		return 0, err
	}
	return a.Balance, nil
}

func authorize(a *Account, auth Authority) error {
	if auth == nil {
		return ErrUnauthorized
	}
	id, err := auth.Identity()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if id != a.Authority {
		return ErrUnauthorized
	}
	return nil
}

// ReassignAuthority hands control of [account] to [newAuthority] if [auth]
// resolves to its current authority.
func (l *Ledger) ReassignAuthority(account common.Address, auth Authority, newAuthority common.Address) error {
	if newAuthority == (common.Address{}) {
		return ErrInvalidAuthority
	}
	a, err := l.mustGet(account)
	if err != nil {
		return err
	}
	if err := authorize(a, auth); err != nil {
		return err
	}
	a.Authority = newAuthority
	return l.put(account, a)
}

// Transfer moves [amount] units from [from] to [to]. Both accounts must hold
// the same mint and [auth] must control [from].
func (l *Ledger) Transfer(from common.Address, to common.Address, amount uint64, auth Authority) error {
	if from == to {
		return ErrNonActionable
	}
	src, err := l.mustGet(from)
	if err != nil {
		return err
	}
	dst, err := l.mustGet(to)
	if err != nil {
		return err
	}
	if src.Mint != dst.Mint {
		return ErrMintMismatch
	}
	if err := authorize(src, auth); err != nil {
		return err
	}
	nsrc, err := safemath.Sub64(src.Balance, amount)
	if err != nil {
		return fmt.Errorf("%w: has %d, needs %d", ErrInsufficientBalance, src.Balance, amount)
	}
	ndst, err := safemath.Add64(dst.Balance, amount)
	if err != nil {
		return err
	}
	src.Balance = nsrc
	dst.Balance = ndst
	if err := l.put(from, src); err != nil {
		return err
	}
	return l.put(to, dst)
}
