// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lcances/shapz-nft-game/client"
	"github.com/lcances/shapz-nft-game/parser"
)

func loadKey() (*ecdsa.PrivateKey, common.Address, error) {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return nil, common.Address{}, err
	}
	return priv, crypto.PubkeyToAddress(priv.PublicKey), nil
}

// getDelegate returns the --delegate flag, or [fallback] if it is unset.
func getDelegate(fallback common.Address) (common.Address, error) {
	if delegateAddr == "" {
		return fallback, nil
	}
	return parser.ParseAddress(delegateAddr)
}

// getStakeOp parses [owner/asset], or a bare [asset] owned by [fallback].
func getStakeOp(args []string, fallback common.Address) (owner common.Address, asset common.Address, err error) {
	if len(args) != 1 {
		return common.Address{}, common.Address{}, fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	if strings.Contains(args[0], parser.Delimiter) {
		owner, asset, err = parser.ResolvePath(args[0])
		if err != nil {
			return common.Address{}, common.Address{}, fmt.Errorf("%w: failed to parse stake path", err)
		}
		return owner, asset, nil
	}
	asset, err = parser.ParseAddress(args[0])
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	return fallback, asset, nil
}

func issueOpts() []client.OpOption {
	opts := []client.OpOption{client.WithPollTx()}
	if verbose {
		opts = append(opts, client.WithVerbose())
	}
	return opts
}
