// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lcances/shapz-nft-game/ledger"
)

const (
	vaultFunds = 1_000_000_000_000
)

var (
	delegate = common.HexToAddress("0xd00000000000000000000000000000000000000d")
	player   = common.HexToAddress("0x1000000000000000000000000000000000000001")
	intruder = common.HexToAddress("0x2000000000000000000000000000000000000002")

	rewardMint = common.HexToAddress("0x3000000000000000000000000000000000000003")
	assetMint  = common.HexToAddress("0x4000000000000000000000000000000000000004")
	otherMint  = common.HexToAddress("0x5000000000000000000000000000000000000005")

	vault         = common.HexToAddress("0x6000000000000000000000000000000000000006")
	assetAccount  = common.HexToAddress("0x7000000000000000000000000000000000000007")
	rewardAccount = common.HexToAddress("0x8000000000000000000000000000000000000008")
	otherAccount  = common.HexToAddress("0x9000000000000000000000000000000000000009")
)

// testEnv is a deployment with a funded vault owned by [delegate] and one
// asset account owned by [player].
type testEnv struct {
	g  *Genesis
	db database.Database
	l  *ledger.Ledger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	g := DefaultGenesis()
	g.Allocations = []*Allocation{
		{Account: vault, Mint: rewardMint, Authority: delegate, Balance: vaultFunds},
		{Account: assetAccount, Mint: assetMint, Authority: player, Balance: 1},
		{Account: rewardAccount, Mint: rewardMint, Authority: player},
		{Account: otherAccount, Mint: otherMint, Authority: player, Balance: 1},
	}
	db := memdb.New()
	t.Cleanup(func() { db.Close() })
	if err := g.Load(db); err != nil {
		t.Fatal(err)
	}
	return &testEnv{g: g, db: db, l: ledger.New(db)}
}

func (e *testEnv) execute(utx UnsignedTransaction, sender common.Address, blockTime uint64) error {
	return utx.Execute(&TransactionContext{
		Genesis:   e.g,
		Database:  e.db,
		Ledger:    e.l,
		BlockTime: blockTime,
		Sender:    sender,
	})
}

func (e *testEnv) authority(t *testing.T, account common.Address) common.Address {
	t.Helper()
	auth, err := e.l.GetAuthority(account)
	if err != nil {
		t.Fatal(err)
	}
	return auth
}

func (e *testEnv) balance(t *testing.T, account common.Address) uint64 {
	t.Helper()
	bal, err := e.l.Balance(account)
	if err != nil {
		t.Fatal(err)
	}
	return bal
}

func (e *testEnv) bootstrap(t *testing.T) {
	t.Helper()
	if err := e.execute(&BootstrapTx{BaseTx: &BaseTx{}, Vault: vault}, delegate, 0); err != nil {
		t.Fatal(err)
	}
}

func (e *testEnv) stake(t *testing.T, blockTime uint64) common.Address {
	t.Helper()
	tx := &StakeTx{
		BaseTx:        &BaseTx{},
		AssetAccount:  assetAccount,
		AssetID:       assetMint,
		RewardAccount: rewardAccount,
		Delegate:      delegate,
	}
	if err := e.execute(tx, player, blockTime); err != nil {
		t.Fatal(err)
	}
	addr, _, err := StakeAddress(e.g.ProgramID, delegate, player, assetMint)
	if err != nil {
		t.Fatal(err)
	}
	return addr
}

func (e *testEnv) record(t *testing.T) (*StakingRecord, bool) {
	t.Helper()
	addr, _, err := StakeAddress(e.g.ProgramID, delegate, player, assetMint)
	if err != nil {
		t.Fatal(err)
	}
	r, exists, err := GetStakingRecord(e.db, addr)
	if err != nil {
		t.Fatal(err)
	}
	return r, exists
}

func claimTx() *ClaimTx {
	return &ClaimTx{BaseTx: &BaseTx{}, Owner: player, AssetID: assetMint, Delegate: delegate}
}

func unstakeTx() *UnstakeTx {
	return &UnstakeTx{BaseTx: &BaseTx{}, Owner: player, AssetID: assetMint, Delegate: delegate}
}
