// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "stakingvm" client SDK.
package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/ledger"
	"github.com/lcances/shapz-nft-game/vm"
)

// Client defines stakingvm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)
	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)

	// Encodes [i] for this deployment and returns the unsigned tx with the
	// digest to sign.
	BuildTx(i *chain.Input, nonce uint64) (chain.UnsignedTransaction, []byte, error)
	// Issues the transaction and returns the transaction ID.
	IssueTx(d []byte) (ids.ID, error)
	// Checks the status of the transaction, and returns "true" if accepted.
	HasTx(id ids.ID) (bool, error)
	// Polls the transaction until it is accepted.
	PollTx(ctx context.Context, txID ids.ID) (accepted bool, err error)

	// Returns the staking record, its address and the reward a claim would
	// pay now.
	StakeInfo(owner, assetID, delegate common.Address) (common.Address, *chain.StakingRecord, uint64, error)
	// Returns the config record of a delegate.
	ConfigInfo(delegate common.Address) (common.Address, *chain.ConfigRecord, error)
	// Returns every record currently staked by an owner.
	Staked(owner common.Address) ([]*chain.StakedRecord, error)
	// Balance returns the balance of a ledger account.
	Balance(addr common.Address) (bal uint64, err error)
	// Account returns a ledger account.
	Account(addr common.Address) (*ledger.Account, bool, error)
	// Derive previews the config and (optionally) staking addresses.
	Derive(delegate, owner, assetID common.Address) (*vm.DeriveReply, error)
	// Returns the most recent operations, newest first.
	RecentActivity() ([]*chain.Activity, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		vm.Name,
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) BuildTx(i *chain.Input, nonce uint64) (chain.UnsignedTransaction, []byte, error) {
	resp := new(vm.BuildTxReply)
	if err := cli.req.SendRequest(
		"buildTx",
		&vm.BuildTxArgs{Input: i, Nonce: nonce},
		resp,
	); err != nil {
		return nil, nil, err
	}
	var utx chain.UnsignedTransaction
	if _, err := chain.Unmarshal(resp.UnsignedTx, &utx); err != nil {
		return nil, nil, err
	}
	return utx, resp.DigestHash, nil
}

func (cli *client) IssueTx(d []byte) (ids.ID, error) {
	resp := new(vm.IssueTxReply)
	if err := cli.req.SendRequest(
		"issueTx",
		&vm.IssueTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.TxID, nil
}

func (cli *client) HasTx(txID ids.ID) (bool, error) {
	resp := new(vm.HasTxReply)
	if err := cli.req.SendRequest(
		"hasTx",
		&vm.HasTxArgs{TxID: txID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Accepted, nil
}

func (cli *client) PollTx(ctx context.Context, txID ids.ID) (accepted bool, err error) {
done:
	for ctx.Err() == nil {
		select {
		case <-time.After(pollInterval):
		case <-ctx.Done():
			break done
		}

		accepted, err := cli.HasTx(txID)
		if err != nil {
			color.Red("polling transaction failed %v", err)
			continue
		}
		if accepted {
			return true, nil
		}
	}
	return false, ctx.Err()
}

func (cli *client) StakeInfo(owner, assetID, delegate common.Address) (common.Address, *chain.StakingRecord, uint64, error) {
	resp := new(vm.StakeInfoReply)
	if err := cli.req.SendRequest(
		"stakeInfo",
		&vm.StakeInfoArgs{Owner: owner, AssetID: assetID, Delegate: delegate},
		resp,
	); err != nil {
		return common.Address{}, nil, 0, err
	}
	return resp.Address, resp.Record, resp.Pending, nil
}

func (cli *client) ConfigInfo(delegate common.Address) (common.Address, *chain.ConfigRecord, error) {
	resp := new(vm.ConfigInfoReply)
	if err := cli.req.SendRequest(
		"configInfo",
		&vm.ConfigInfoArgs{Delegate: delegate},
		resp,
	); err != nil {
		return common.Address{}, nil, err
	}
	return resp.Address, resp.Config, nil
}

func (cli *client) Staked(owner common.Address) ([]*chain.StakedRecord, error) {
	resp := new(vm.StakedReply)
	if err := cli.req.SendRequest(
		"staked",
		&vm.StakedArgs{Owner: owner},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Staked, nil
}

func (cli *client) Balance(addr common.Address) (bal uint64, err error) {
	resp := new(vm.BalanceReply)
	if err = cli.req.SendRequest(
		"balance",
		&vm.AccountArgs{Address: addr},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (cli *client) Account(addr common.Address) (*ledger.Account, bool, error) {
	resp := new(vm.AccountReply)
	if err := cli.req.SendRequest(
		"account",
		&vm.AccountArgs{Address: addr},
		resp,
	); err != nil {
		return nil, false, err
	}
	return resp.Account, resp.Exists, nil
}

func (cli *client) Derive(delegate, owner, assetID common.Address) (*vm.DeriveReply, error) {
	resp := new(vm.DeriveReply)
	if err := cli.req.SendRequest(
		"derive",
		&vm.DeriveArgs{Delegate: delegate, Owner: owner, AssetID: assetID},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *client) RecentActivity() ([]*chain.Activity, error) {
	resp := new(vm.RecentActivityReply)
	if err := cli.req.SendRequest(
		"recentActivity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}
