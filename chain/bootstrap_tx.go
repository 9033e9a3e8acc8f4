// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &BootstrapTx{}

// BootstrapTx creates the signer's config record and hands custody of the
// reward vault to the config's derived address. It succeeds once per
// delegate.
type BootstrapTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// Vault is the pre-funded reward account, controlled by the signer.
	Vault common.Address `serialize:"true" json:"vault"`
}

func (b *BootstrapTx) Execute(t *TransactionContext) error {
	if err := validAccounts(b.Vault); err != nil {
		return err
	}
	delegate := t.Sender
	addr, bump, err := ConfigAddress(t.Genesis.ProgramID, delegate)
	if err != nil {
		return err
	}

	// Creation fails closed on replay so authority is never re-delegated.
	cfg := &ConfigRecord{
		Delegate: delegate,
		Vault:    b.Vault,
		Bump:     bump,
	}
	if err := CreateConfigRecord(t.Database, addr, cfg); err != nil {
		return err
	}
	if err := t.Ledger.ReassignAuthority(b.Vault, SignerAuthority(delegate), addr); err != nil {
		return ledgerFailure(err)
	}
	cfg.VaultInitialized = true
	return PutConfigRecord(t.Database, addr, cfg)
}

func (b *BootstrapTx) Copy() UnsignedTransaction {
	return &BootstrapTx{
		BaseTx: b.BaseTx.Copy(),
		Vault:  b.Vault,
	}
}

func (b *BootstrapTx) Activity() *Activity {
	return &Activity{
		Typ:     Bootstrap,
		Account: b.Vault.Hex(),
	}
}
