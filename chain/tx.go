// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte `serialize:"true" json:"signature"`

	digestHash []byte
	bytes      []byte
	id         ids.ID
	size       uint64
	sender     common.Address
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

// Init computes the cached digest, sender and id. It must be called before
// a decoded or newly built tx is used.
func (t *Transaction) Init() error {
	if t.UnsignedTransaction == nil {
		return ErrInvalidType
	}
	dh, err := DigestHash(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.digestHash = dh

	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx
	t.size = uint64(len(t.Bytes()))

	pk, err := DeriveSender(t.digestHash, t.Signature)
	if err != nil {
		return err
	}
	t.sender = crypto.PubkeyToAddress(*pk)

	// The id covers what was signed and who signed it, never the signature
	// encoding, so a re-encoded signature cannot mint a fresh id.
	t.id = ids.ID(hashing.ComputeHash256Array(append(append([]byte{}, t.digestHash...), t.sender[:]...)))
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) DigestHash() []byte { return t.digestHash }

// Sender is the identity whose key produced the signature.
func (t *Transaction) Sender() common.Address { return t.sender }

func (t *Transaction) Execute(g *Genesis, db database.Database, l Ledger, blockTime uint64) error {
	if err := t.UnsignedTransaction.ExecuteBase(g); err != nil {
		return err
	}
	dup, err := HasTransaction(db, t.ID())
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateTx
	}
	context := &TransactionContext{
		Genesis:   g,
		Database:  db,
		Ledger:    l,
		BlockTime: blockTime,
		TxID:      t.id,
		Sender:    t.sender,
	}
	if err := t.UnsignedTransaction.Execute(context); err != nil {
		return err
	}
	return SetTransaction(db, t)
}

func (t *Transaction) Activity() *Activity {
	activity := t.UnsignedTransaction.Activity()
	activity.TxID = t.id.String()
	activity.Sender = t.sender.Hex()
	return activity
}
