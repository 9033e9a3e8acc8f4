// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type BaseTx struct {
	// Magic identifies the deployment a tx was signed for.
	Magic uint64 `serialize:"true" json:"magic"`

	// Nonce distinguishes otherwise identical txs (e.g. repeated claims).
	Nonce uint64 `serialize:"true" json:"nonce"`
}

func (b *BaseTx) SetMagic(magic uint64) {
	b.Magic = magic
}

func (b *BaseTx) GetMagic() uint64 {
	return b.Magic
}

func (b *BaseTx) SetNonce(nonce uint64) {
	b.Nonce = nonce
}

func (b *BaseTx) ExecuteBase(g *Genesis) error {
	if b.Magic != g.Magic {
		return ErrInvalidMagic
	}
	return nil
}

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{
		Magic: b.Magic,
		Nonce: b.Nonce,
	}
}
