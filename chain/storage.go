// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lcances/shapz-nft-game/codec"
	"github.com/lcances/shapz-nft-game/parser"
)

// 0x0/ (staking records)
//   -> [record address]
// 0x1/ (config records)
//   -> [config address]
// 0x2/ (owner index)
//   -> [owner]
//     -> [record address]
// 0x3/ (tx hashes)
// 0x4/ (genesis marker)

const (
	stakePrefix   = 0x0
	configPrefix  = 0x1
	ownedPrefix   = 0x2
	txPrefix      = 0x3
	genesisPrefix = 0x4

	discriminantLen = 8
)

var (
	stakingDiscriminant = recordDiscriminant("StakingRecord")
	configDiscriminant  = recordDiscriminant("ConfigRecord")

	genesisKey = []byte{genesisPrefix, parser.ByteDelimiter}

	// stored under marker keys (owner index, txs, genesis)
	present = []byte{0x1}

	CompactablePrefixes = []byte{stakePrefix, configPrefix, ownedPrefix, txPrefix}
)

// recordDiscriminant tags stored values so that record kinds sharing the
// key space can never be decoded as one another.
func recordDiscriminant(kind string) []byte {
	return hashing.ComputeHash256([]byte("record:" + kind))[:discriminantLen]
}

// CompactablePrefixKey is the start of the key range under [prefix].
func CompactablePrefixKey(prefix byte) []byte {
	return []byte{prefix}
}

func StakeRecordKey(addr common.Address) []byte {
	return append([]byte{stakePrefix, parser.ByteDelimiter}, addr[:]...)
}

func ConfigRecordKey(addr common.Address) []byte {
	return append([]byte{configPrefix, parser.ByteDelimiter}, addr[:]...)
}

func ownedPrefixKey(owner common.Address) []byte {
	k := append([]byte{ownedPrefix, parser.ByteDelimiter}, owner[:]...)
	return append(k, parser.ByteDelimiter)
}

func OwnedKey(owner common.Address, addr common.Address) []byte {
	return append(ownedPrefixKey(owner), addr[:]...)
}

func PrefixTxKey(txID ids.ID) []byte {
	return append([]byte{txPrefix, parser.ByteDelimiter}, txID[:]...)
}

func encodeRecord(discriminant []byte, v interface{}) ([]byte, error) {
	b, err := codec.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(append(make([]byte, 0, discriminantLen+len(b)), discriminant...), b...), nil
}

func decodeRecord(discriminant []byte, b []byte, v interface{}) error {
	if len(b) < discriminantLen || !bytes.Equal(b[:discriminantLen], discriminant) {
		return ErrInvalidRecordKind
	}
	_, err := codec.Unmarshal(b[discriminantLen:], v)
	return err
}

func getRecord(db database.KeyValueReader, k []byte, discriminant []byte, v interface{}) (bool, error) {
	b, err := db.Get(k)
	if err == database.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := decodeRecord(discriminant, b, v); err != nil {
		return false, err
	}
	return true, nil
}

func GetStakingRecord(db database.KeyValueReader, addr common.Address) (*StakingRecord, bool, error) {
	r := new(StakingRecord)
	exists, err := getRecord(db, StakeRecordKey(addr), stakingDiscriminant, r)
	if !exists || err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func HasStakingRecord(db database.KeyValueReader, addr common.Address) (bool, error) {
	return db.Has(StakeRecordKey(addr))
}

// CreateStakingRecord stores [r] at [addr], failing if the address is
// occupied, and indexes it under its owner.
func CreateStakingRecord(db database.Database, addr common.Address, r *StakingRecord) error {
	has, err := HasStakingRecord(db, addr)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrRecordExists, addr)
	}
	if err := PutStakingRecord(db, addr, r); err != nil {
		return err
	}
	return db.Put(OwnedKey(r.Owner, addr), present)
}

func PutStakingRecord(db database.KeyValueWriter, addr common.Address, r *StakingRecord) error {
	b, err := encodeRecord(stakingDiscriminant, r)
	if err != nil {
		return err
	}
	return db.Put(StakeRecordKey(addr), b)
}

func DeleteStakingRecord(db database.Database, addr common.Address, owner common.Address) error {
	if err := db.Delete(StakeRecordKey(addr)); err != nil {
		return err
	}
	return db.Delete(OwnedKey(owner, addr))
}

type StakedRecord struct {
	Address common.Address `json:"address"`
	Record  *StakingRecord `json:"record"`
}

// GetAllStaked returns every staking record currently held by [owner].
func GetAllStaked(db database.Database, owner common.Address) ([]*StakedRecord, error) {
	prefix := ownedPrefixKey(owner)
	cursor := db.NewIteratorWithPrefix(prefix)
	defer cursor.Release()

	staked := []*StakedRecord{}
	for cursor.Next() {
		addr := common.BytesToAddress(cursor.Key()[len(prefix):])
		r, exists, err := GetStakingRecord(db, addr)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: indexed record %s missing", ErrRecordNotFound, addr)
		}
		staked = append(staked, &StakedRecord{Address: addr, Record: r})
	}
	return staked, cursor.Error()
}

func GetConfigRecord(db database.KeyValueReader, addr common.Address) (*ConfigRecord, bool, error) {
	c := new(ConfigRecord)
	exists, err := getRecord(db, ConfigRecordKey(addr), configDiscriminant, c)
	if !exists || err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// CreateConfigRecord stores [c] at [addr]. A config is created exactly once.
func CreateConfigRecord(db database.Database, addr common.Address, c *ConfigRecord) error {
	k := ConfigRecordKey(addr)
	has, err := db.Has(k)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, addr)
	}
	return PutConfigRecord(db, addr, c)
}

func PutConfigRecord(db database.KeyValueWriter, addr common.Address, c *ConfigRecord) error {
	b, err := encodeRecord(configDiscriminant, c)
	if err != nil {
		return err
	}
	return db.Put(ConfigRecordKey(addr), b)
}

func SetTransaction(db database.KeyValueWriter, tx *Transaction) error {
	return db.Put(PrefixTxKey(tx.ID()), present)
}

func HasTransaction(db database.KeyValueReader, txID ids.ID) (bool, error) {
	return db.Has(PrefixTxKey(txID))
}

func HasGenesis(db database.KeyValueReader) (bool, error) {
	return db.Has(genesisKey)
}

func SetGenesis(db database.KeyValueWriter) error {
	return db.Put(genesisKey, present)
}
