// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"

	"github.com/lcances/shapz-nft-game/chain"
)

var pollInterval = time.Second

// Signs and issues the transaction.
func SignIssueTx(
	ctx context.Context,
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis()
	if err != nil {
		return ids.Empty, err
	}
	nonce, err := randomNonce()
	if err != nil {
		return ids.Empty, err
	}
	utx.SetMagic(g.Magic)
	utx.SetNonce(nonce)

	tx, err := SignTx(utx, priv)
	if err != nil {
		return ids.Empty, err
	}
	return issue(ctx, cli, tx, ret)
}

// BuildSignIssueTx has the vm encode [i], checks the result against a local
// encoding of [i] and then signs and issues the local tx.
func BuildSignIssueTx(
	ctx context.Context,
	cli Client,
	i *chain.Input,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis()
	if err != nil {
		return ids.Empty, err
	}
	nonce, err := randomNonce()
	if err != nil {
		return ids.Empty, err
	}
	local, err := i.Decode()
	if err != nil {
		return ids.Empty, err
	}
	local.SetMagic(g.Magic)
	local.SetNonce(nonce)
	want, err := chain.DigestHash(local)
	if err != nil {
		return ids.Empty, err
	}

	utx, dh, err := cli.BuildTx(i, nonce)
	if err != nil {
		return ids.Empty, err
	}
	built, err := chain.DigestHash(utx)
	if err != nil {
		return ids.Empty, err
	}
	// the vm's encoding must match what [i] says, not just its own digest
	if !bytes.Equal(want, dh) || !bytes.Equal(want, built) {
		return ids.Empty, ErrDigestMismatch
	}
	tx, err := SignTx(local, priv)
	if err != nil {
		return ids.Empty, err
	}
	return issue(ctx, cli, tx, ret)
}

func issue(ctx context.Context, cli Client, tx *chain.Transaction, ret *Op) (ids.ID, error) {
	if ret.verbose {
		color.Yellow("issuing tx %s (sender=%s)", tx.ID(), tx.Sender().Hex())
	}
	txID, err := cli.IssueTx(tx.Bytes())
	if err != nil {
		return ids.Empty, err
	}

	if ret.pollTx {
		color.Green("issued transaction %s (now polling)", txID)
		accepted, err := cli.PollTx(ctx, txID)
		if err != nil {
			return ids.Empty, err
		}
		if !accepted {
			color.Yellow("transaction %s not accepted", txID)
		} else {
			color.Green("transaction %s accepted", txID)
		}
	}
	return txID, nil
}

// SignTx signs [utx] as is; its magic and nonce must already be set.
func SignTx(utx chain.UnsignedTransaction, priv *ecdsa.PrivateKey) (*chain.Transaction, error) {
	dh, err := chain.DigestHash(utx)
	if err != nil {
		return nil, err
	}
	sig, err := chain.Sign(dh, priv)
	if err != nil {
		return nil, err
	}
	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		return nil, err
	}
	return tx, nil
}

func randomNonce() (uint64, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

type Op struct {
	pollTx  bool
	verbose bool
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to poll transaction for its confirmation.
func WithPollTx() OpOption {
	return func(op *Op) { op.pollTx = true }
}

// "true" to print the tx before issuing it.
func WithVerbose() OpOption {
	return func(op *Op) { op.verbose = true }
}
