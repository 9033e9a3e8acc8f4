// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/inconshreveable/log15"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/ledger"
)

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type BuildTxArgs struct {
	Input *chain.Input `serialize:"true" json:"input"`
	Nonce uint64       `serialize:"true" json:"nonce"`
}

type BuildTxReply struct {
	UnsignedTx hexutil.Bytes `serialize:"true" json:"unsignedTx"`
	DigestHash hexutil.Bytes `serialize:"true" json:"digestHash"`
}

// BuildTx encodes an unsigned tx for this deployment and returns the digest
// its sender must sign.
func (svc *PublicService) BuildTx(_ *http.Request, args *BuildTxArgs, reply *BuildTxReply) error {
	if args.Input == nil {
		return ErrInputIsNil
	}
	utx, err := args.Input.Decode()
	if err != nil {
		return err
	}
	utx.SetMagic(svc.vm.genesis.Magic)
	utx.SetNonce(args.Nonce)

	b, err := chain.Marshal(&utx)
	if err != nil {
		return err
	}
	dh, err := chain.DigestHash(utx)
	if err != nil {
		return err
	}
	reply.UnsignedTx = b
	reply.DigestHash = dh
	return nil
}

type IssueTxArgs struct {
	Tx hexutil.Bytes `serialize:"true" json:"tx"`
}

type IssueTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	if len(args.Tx) == 0 {
		return ErrInvalidEmptyTx
	}
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	errs := svc.vm.Submit(tx)
	reply.Success = len(errs) == 0
	if reply.Success {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return fmt.Errorf("%v", errs)
}

type HasTxArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type HasTxReply struct {
	Accepted bool `serialize:"true" json:"accepted"`
}

func (svc *PublicService) HasTx(_ *http.Request, args *HasTxArgs, reply *HasTxReply) error {
	has, err := svc.vm.HasTx(args.TxID)
	if err != nil {
		return err
	}
	reply.Accepted = has
	return nil
}

type StakeInfoArgs struct {
	Owner    common.Address `serialize:"true" json:"owner"`
	AssetID  common.Address `serialize:"true" json:"assetId"`
	Delegate common.Address `serialize:"true" json:"delegate"`
}

type StakeInfoReply struct {
	Address common.Address       `serialize:"true" json:"address"`
	Record  *chain.StakingRecord `serialize:"true" json:"record"`
	Pending uint64               `serialize:"true" json:"pending"`
}

func (svc *PublicService) StakeInfo(_ *http.Request, args *StakeInfoArgs, reply *StakeInfoReply) error {
	addr, r, pending, err := svc.vm.StakeInfo(args.Owner, args.AssetID, args.Delegate)
	if err != nil {
		return err
	}
	reply.Address = addr
	reply.Record = r
	reply.Pending = pending
	return nil
}

type ConfigInfoArgs struct {
	Delegate common.Address `serialize:"true" json:"delegate"`
}

type ConfigInfoReply struct {
	Address common.Address      `serialize:"true" json:"address"`
	Config  *chain.ConfigRecord `serialize:"true" json:"config"`
}

func (svc *PublicService) ConfigInfo(_ *http.Request, args *ConfigInfoArgs, reply *ConfigInfoReply) error {
	addr, cfg, err := svc.vm.ConfigInfo(args.Delegate)
	if err != nil {
		return err
	}
	reply.Address = addr
	reply.Config = cfg
	return nil
}

type StakedArgs struct {
	Owner common.Address `serialize:"true" json:"owner"`
}

type StakedReply struct {
	Staked []*chain.StakedRecord `serialize:"true" json:"staked"`
}

func (svc *PublicService) Staked(_ *http.Request, args *StakedArgs, reply *StakedReply) error {
	staked, err := svc.vm.Staked(args.Owner)
	if err != nil {
		return err
	}
	reply.Staked = staked
	return nil
}

type AccountArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type AccountReply struct {
	Exists  bool            `serialize:"true" json:"exists"`
	Account *ledger.Account `serialize:"true" json:"account"`
}

func (svc *PublicService) Account(_ *http.Request, args *AccountArgs, reply *AccountReply) error {
	a, exists, err := svc.vm.Account(args.Address)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Account = a
	return nil
}

type BalanceReply struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (svc *PublicService) Balance(_ *http.Request, args *AccountArgs, reply *BalanceReply) error {
	a, exists, err := svc.vm.Account(args.Address)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ledger.ErrAccountMissing, args.Address)
	}
	reply.Balance = a.Balance
	return nil
}

type DeriveArgs struct {
	Delegate common.Address `serialize:"true" json:"delegate"`

	// Owner and AssetID are optional; when both are set the staking address
	// is derived as well.
	Owner   common.Address `serialize:"true" json:"owner"`
	AssetID common.Address `serialize:"true" json:"assetId"`
}

type DeriveReply struct {
	Config     common.Address  `serialize:"true" json:"config"`
	ConfigBump uint8           `serialize:"true" json:"configBump"`
	Stake      *common.Address `serialize:"true" json:"stake,omitempty"`
	StakeBump  uint8           `serialize:"true" json:"stakeBump"`
}

func (svc *PublicService) Derive(_ *http.Request, args *DeriveArgs, reply *DeriveReply) error {
	programID := svc.vm.genesis.ProgramID
	cfg, bump, err := chain.ConfigAddress(programID, args.Delegate)
	if err != nil {
		return err
	}
	reply.Config = cfg
	reply.ConfigBump = bump

	if args.Owner == (common.Address{}) || args.AssetID == (common.Address{}) {
		return nil
	}
	stake, bump, err := chain.StakeAddress(programID, args.Delegate, args.Owner, args.AssetID)
	if err != nil {
		return err
	}
	reply.Stake = &stake
	reply.StakeBump = bump
	return nil
}

type RecentActivityReply struct {
	Activity []*chain.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, _ *struct{}, reply *RecentActivityReply) error {
	reply.Activity = svc.vm.RecentActivity()
	return nil
}
