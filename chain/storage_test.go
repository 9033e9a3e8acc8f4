// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
)

func TestPrefixKeys(t *testing.T) {
	t.Parallel()

	addr := common.Address{0xa}
	owner := common.Address{0x1}
	id := ids.GenerateTestID()
	tt := []struct {
		key     []byte
		prefix  []byte
		trailer []byte
	}{
		{StakeRecordKey(addr), []byte{stakePrefix, '/'}, addr[:]},
		{ConfigRecordKey(addr), []byte{configPrefix, '/'}, addr[:]},
		{OwnedKey(owner, addr), append(append([]byte{ownedPrefix, '/'}, owner[:]...), '/'), addr[:]},
		{PrefixTxKey(id), []byte{txPrefix, '/'}, id[:]},
	}
	for i, tv := range tt {
		if !bytes.HasPrefix(tv.key, tv.prefix) {
			t.Fatalf("#%d: key %x missing prefix %x", i, tv.key, tv.prefix)
		}
		if !bytes.Equal(tv.key[len(tv.prefix):], tv.trailer) {
			t.Fatalf("#%d: key %x unexpected trailer", i, tv.key)
		}
	}
}

func TestStakingRecordStorage(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	owner := common.Address{0x1}
	addr, addr2 := common.Address{0xa}, common.Address{0xb}
	r := &StakingRecord{
		Owner:         owner,
		AssetAccount:  common.Address{0x10},
		RewardAccount: common.Address{0x11},
		AssetID:       common.Address{0x12},
		AccrualRate:   7,
		CreatedAt:     100,
		ClaimedAt:     150,
		Bump:          254,
	}

	if _, exists, err := GetStakingRecord(db, addr); exists || err != nil {
		t.Fatalf("unexpected record (exists=%t, err=%v)", exists, err)
	}
	if err := CreateStakingRecord(db, addr, r); err != nil {
		t.Fatal(err)
	}
	if err := CreateStakingRecord(db, addr, r); !errors.Is(err, ErrRecordExists) {
		t.Fatalf("unexpected error %v, expected %v", err, ErrRecordExists)
	}
	if err := CreateStakingRecord(db, addr2, r); err != nil {
		t.Fatal(err)
	}

	got, exists, err := GetStakingRecord(db, addr)
	if err != nil || !exists {
		t.Fatalf("record missing (exists=%t, err=%v)", exists, err)
	}
	if diff := cmp.Diff(r, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	staked, err := GetAllStaked(db, owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(staked) != 2 {
		t.Fatalf("expected 2 staked records, got %d", len(staked))
	}
	if others, err := GetAllStaked(db, common.Address{0x2}); err != nil || len(others) != 0 {
		t.Fatalf("unexpected records for another owner (%d, %v)", len(others), err)
	}

	if err := DeleteStakingRecord(db, addr, owner); err != nil {
		t.Fatal(err)
	}
	if _, exists, err := GetStakingRecord(db, addr); exists || err != nil {
		t.Fatalf("record not deleted (exists=%t, err=%v)", exists, err)
	}
	staked, err = GetAllStaked(db, owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(staked) != 1 || staked[0].Address != addr2 {
		t.Fatalf("unexpected staked records %+v", staked)
	}

	// a deleted address can be staked again
	if err := CreateStakingRecord(db, addr, r); err != nil {
		t.Fatal(err)
	}
}

func TestRecordKind(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	addr := common.Address{0xa}
	c := &ConfigRecord{Delegate: common.Address{0xd}, Vault: common.Address{0xe}, VaultInitialized: true, Bump: 255}
	if err := CreateConfigRecord(db, addr, c); err != nil {
		t.Fatal(err)
	}
	if err := CreateConfigRecord(db, addr, c); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("unexpected error %v, expected %v", err, ErrAlreadyInitialized)
	}

	// a config value planted at a staking key is refused
	b, err := db.Get(ConfigRecordKey(addr))
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Put(StakeRecordKey(addr), b); err != nil {
		t.Fatal(err)
	}
	if _, _, err := GetStakingRecord(db, addr); !errors.Is(err, ErrInvalidRecordKind) {
		t.Fatalf("unexpected error %v, expected %v", err, ErrInvalidRecordKind)
	}
	if err := db.Put(StakeRecordKey(addr), []byte{0x1}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := GetStakingRecord(db, addr); !errors.Is(err, ErrInvalidRecordKind) {
		t.Fatalf("unexpected error %v, expected %v", err, ErrInvalidRecordKind)
	}

	got, exists, err := GetConfigRecord(db, addr)
	if err != nil || !exists {
		t.Fatalf("config missing (exists=%t, err=%v)", exists, err)
	}
	if diff := cmp.Diff(c, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestPendingReward(t *testing.T) {
	t.Parallel()

	tt := []struct {
		claimedAt uint64
		now       uint64
		rate      uint64
		pending   uint64
		err       error
	}{
		{claimedAt: 0, now: 100, rate: 3, pending: 300},
		{claimedAt: 100, now: 100, rate: 3, pending: 0},
		{claimedAt: 100, now: 150, rate: 10_000_000, pending: 500_000_000},
		{claimedAt: 150, now: 149, rate: 3, err: ErrInvalidElapsed},
		{claimedAt: 0, now: 1 << 40, rate: 1 << 40, err: ErrPayoutOverflow},
	}
	for i, tv := range tt {
		r := &StakingRecord{ClaimedAt: tv.claimedAt, AccrualRate: tv.rate}
		pending, err := r.Pending(tv.now)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
		if pending != tv.pending {
			t.Fatalf("#%d: pending expected %d, got %d", i, tv.pending, pending)
		}
	}
}
