// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm hosts the staking program: it executes signed transactions
// atomically against a database and serves the results over JSON-RPC.
package vm

import (
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/ledger"
	"github.com/lcances/shapz-nft-game/version"
)

type VM struct {
	config  Config
	genesis *chain.Genesis
	db      database.Database
	clock   Clock

	newLedger func(database.Database) chain.Ledger

	registry *prometheus.Registry
	metrics  *metrics

	// [execLock] serializes execution; reads take it shared so they never
	// observe a half-committed transaction
	execLock sync.RWMutex

	activityCacheLock   sync.RWMutex
	activityCache       []*chain.Activity
	activityCacheCursor uint64

	stop        chan struct{}
	stopOnce    sync.Once
	doneCompact chan struct{}
}

type Option func(*VM)

// WithClock sets the time source transactions execute at.
func WithClock(c Clock) Option {
	return func(vm *VM) { vm.clock = c }
}

// WithLedger replaces the custody ledger bound to each execution.
func WithLedger(f func(database.Database) chain.Ledger) Option {
	return func(vm *VM) { vm.newLedger = f }
}

func defaultLedger(db database.Database) chain.Ledger {
	return ledger.New(db)
}

// New loads [g] into [db] (once) and starts the vm.
func New(db database.Database, g *chain.Genesis, config Config, opts ...Option) (*VM, error) {
	if err := g.Verify(); err != nil {
		return nil, err
	}
	if config.CompactInterval <= 0 {
		return nil, fmt.Errorf("%w: compact interval %v", ErrInvalidConfig, config.CompactInterval)
	}

	vm := &VM{
		config:      config,
		genesis:     g,
		db:          db,
		clock:       &mockable.Clock{},
		newLedger:   defaultLedger,
		registry:    prometheus.NewRegistry(),
		stop:        make(chan struct{}),
		doneCompact: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(vm)
	}
	if config.ActivityCacheSize > 0 {
		vm.activityCache = make([]*chain.Activity, config.ActivityCacheSize)
	}
	m, err := newMetrics(vm.registry)
	if err != nil {
		return nil, err
	}
	vm.metrics = m

	vdb := versiondb.New(db)
	defer vdb.Abort()
	if err := g.Load(vdb); err != nil {
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		return nil, err
	}

	go vm.compact()

	rate, _ := g.AccrualRate()
	log.Info("initialized stakingvm",
		"version", version.Version,
		"programID", g.ProgramID,
		"accrualRate", rate,
		"allocations", len(g.Allocations),
	)
	return vm, nil
}

// Shutdown stops the background loops. It does not close the database.
func (vm *VM) Shutdown() {
	vm.stopOnce.Do(func() {
		close(vm.stop)
	})
	<-vm.doneCompact
}

func (vm *VM) stopped() bool {
	select {
	case <-vm.stop:
		return true
	default:
		return false
	}
}

func (vm *VM) Genesis() *chain.Genesis {
	return vm.genesis
}

// Gatherer exposes the vm's metrics.
func (vm *VM) Gatherer() prometheus.Gatherer {
	return vm.registry
}

// Submit executes each tx in order and returns the errors of those that
// failed. A failed tx leaves no trace in the database or the ledger.
func (vm *VM) Submit(txs ...*chain.Transaction) (errs []error) {
	for _, tx := range txs {
		if err := vm.execute(tx); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (vm *VM) execute(tx *chain.Transaction) error {
	if tx == nil || tx.UnsignedTransaction == nil {
		return ErrInvalidEmptyTx
	}
	if vm.stopped() {
		return ErrShutdown
	}

	vm.execLock.Lock()
	defer vm.execLock.Unlock()

	now := vm.clock.Unix()
	typ := tx.Activity().Typ

	vdb := versiondb.New(vm.db)
	defer vdb.Abort()
	if err := tx.Execute(vm.genesis, vdb, vm.newLedger(vdb), now); err != nil {
		vm.metrics.txsRejected.WithLabelValues(typ).Inc()
		log.Debug("transaction aborted", "txID", tx.ID(), "type", typ, "sender", tx.Sender(), "error", err)
		return err
	}
	if err := vdb.Commit(); err != nil {
		vm.metrics.txsRejected.WithLabelValues(typ).Inc()
		log.Error("unable to commit transaction", "txID", tx.ID(), "error", err)
		return err
	}

	activity := tx.Activity()
	activity.Tmstmp = now
	vm.recordActivity(activity)
	vm.metrics.txsAccepted.WithLabelValues(typ).Inc()
	if claim, ok := tx.UnsignedTransaction.(*chain.ClaimTx); ok {
		vm.metrics.rewardsPaid.Add(float64(claim.Payout()))
	}
	log.Debug("transaction committed", "txID", tx.ID(), "type", typ, "sender", tx.Sender(), "t", now)
	return nil
}

func (vm *VM) HasTx(txID ids.ID) (bool, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()
	return chain.HasTransaction(vm.db, txID)
}

// StakeInfo returns the staking record of [owner]'s [assetID] under
// [delegate] together with the reward a claim would pay now.
func (vm *VM) StakeInfo(owner, assetID, delegate common.Address) (common.Address, *chain.StakingRecord, uint64, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()

	addr, _, err := chain.StakeAddress(vm.genesis.ProgramID, delegate, owner, assetID)
	if err != nil {
		return common.Address{}, nil, 0, err
	}
	r, exists, err := chain.GetStakingRecord(vm.db, addr)
	if err != nil {
		return common.Address{}, nil, 0, err
	}
	if !exists {
		return addr, nil, 0, fmt.Errorf("%w: %s", chain.ErrRecordNotFound, addr)
	}
	pending, err := r.Pending(vm.clock.Unix())
	if err != nil {
		return common.Address{}, nil, 0, err
	}
	return addr, r, pending, nil
}

func (vm *VM) ConfigInfo(delegate common.Address) (common.Address, *chain.ConfigRecord, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()

	addr, _, err := chain.ConfigAddress(vm.genesis.ProgramID, delegate)
	if err != nil {
		return common.Address{}, nil, err
	}
	cfg, exists, err := chain.GetConfigRecord(vm.db, addr)
	if err != nil {
		return common.Address{}, nil, err
	}
	if !exists {
		return addr, nil, fmt.Errorf("%w: %s", chain.ErrRecordNotFound, addr)
	}
	return addr, cfg, nil
}

func (vm *VM) Staked(owner common.Address) ([]*chain.StakedRecord, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()
	return chain.GetAllStaked(vm.db, owner)
}

// Account returns the ledger entry of [addr].
func (vm *VM) Account(addr common.Address) (*ledger.Account, bool, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()
	return ledger.New(vm.db).GetAccount(addr)
}
