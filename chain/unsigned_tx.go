// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lcances/shapz-nft-game/ledger"
)

// Ledger is the custody ledger a transaction issues its intents against.
type Ledger interface {
	GetAuthority(account common.Address) (common.Address, error)
	GetMint(account common.Address) (common.Address, error)
	ReassignAuthority(account common.Address, auth ledger.Authority, newAuthority common.Address) error
	Transfer(from common.Address, to common.Address, amount uint64, auth ledger.Authority) error
}

var _ Ledger = &ledger.Ledger{}

// TransactionContext is everything a transaction may observe or mutate. The
// host hands each execution a [Database] and [Ledger] layered so that the
// whole execution commits or aborts as one.
type TransactionContext struct {
	Genesis   *Genesis
	Database  database.Database
	Ledger    Ledger
	BlockTime uint64
	TxID      ids.ID
	Sender    common.Address
}

type UnsignedTransaction interface {
	Copy() UnsignedTransaction
	GetMagic() uint64
	SetMagic(magic uint64)
	SetNonce(nonce uint64)

	ExecuteBase(*Genesis) error
	Execute(*TransactionContext) error
	Activity() *Activity
}
