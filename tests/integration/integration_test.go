// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// integration implements the integration tests.
package integration_test

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"flag"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	ecommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	log "github.com/inconshreveable/log15"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/client"
	"github.com/lcances/shapz-nft-game/vm"
)

func TestIntegration(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "stakingvm integration test suites")
}

var (
	requestTimeout time.Duration
	vms            int
)

func init() {
	flag.DurationVar(
		&requestTimeout,
		"request-timeout",
		30*time.Second,
		"timeout for transaction issuance and confirmation",
	)
	flag.IntVar(
		&vms,
		"vms",
		2,
		"number of VMs to create",
	)
}

const (
	startTime  = 1_000
	vaultFunds = 1_000_000_000_000
)

var (
	rewardMint    = ecommon.HexToAddress("0x3000000000000000000000000000000000000003")
	assetMint     = ecommon.HexToAddress("0x4000000000000000000000000000000000000004")
	vault         = ecommon.HexToAddress("0x6000000000000000000000000000000000000006")
	assetAccount  = ecommon.HexToAddress("0x7000000000000000000000000000000000000007")
	rewardAccount = ecommon.HexToAddress("0x8000000000000000000000000000000000000008")
)

var (
	delegatePriv *ecdsa.PrivateKey
	delegate     ecommon.Address

	playerPriv *ecdsa.PrivateKey
	player     ecommon.Address

	genesis   *chain.Genesis
	rate      uint64
	instances []instance
)

type instance struct {
	vm         *vm.VM
	clock      *vm.ManualClock
	httpServer *httptest.Server
	cli        client.Client
}

var _ = ginkgo.BeforeSuite(func() {
	gomega.Ω(vms).Should(gomega.BeNumerically(">", 0))

	var err error
	delegatePriv, err = crypto.GenerateKey()
	gomega.Ω(err).Should(gomega.BeNil())
	delegate = crypto.PubkeyToAddress(delegatePriv.PublicKey)
	log.Debug("generated key", "addr", delegate, "priv", hex.EncodeToString(crypto.FromECDSA(delegatePriv)))

	playerPriv, err = crypto.GenerateKey()
	gomega.Ω(err).Should(gomega.BeNil())
	player = crypto.PubkeyToAddress(playerPriv.PublicKey)
	log.Debug("generated key", "addr", player, "priv", hex.EncodeToString(crypto.FromECDSA(playerPriv)))

	genesis = chain.DefaultGenesis()
	genesis.Magic = 5
	genesis.Allocations = []*chain.Allocation{
		{Account: vault, Mint: rewardMint, Authority: delegate, Balance: vaultFunds},
		{Account: assetAccount, Mint: assetMint, Authority: player, Balance: 1},
		{Account: rewardAccount, Mint: rewardMint, Authority: player},
	}
	rate, err = genesis.AccrualRate()
	gomega.Ω(err).Should(gomega.BeNil())

	config := vm.Config{}
	config.SetDefaults()

	instances = make([]instance, vms)
	for i := range instances {
		clock := vm.NewManualClock(startTime)
		v, err := vm.New(memdb.New(), genesis, config, vm.WithClock(clock))
		gomega.Ω(err).Should(gomega.BeNil())

		h, err := vm.NewHTTPHandler(v)
		gomega.Ω(err).Should(gomega.BeNil())
		httpServer := httptest.NewServer(h)
		instances[i] = instance{
			vm:         v,
			clock:      clock,
			httpServer: httpServer,
			cli:        client.New(httpServer.URL, requestTimeout),
		}
	}

	for _, inst := range instances {
		g, err := inst.cli.Genesis()
		gomega.Ω(err).Should(gomega.BeNil())
		for _, alloc := range g.Allocations {
			bal, err := inst.cli.Balance(alloc.Account)
			gomega.Ω(err).Should(gomega.BeNil())
			gomega.Ω(bal).Should(gomega.Equal(alloc.Balance))
		}
	}
	color.Blue("created %d VMs", vms)
})

var _ = ginkgo.AfterSuite(func() {
	for _, inst := range instances {
		inst.httpServer.Close()
		inst.vm.Shutdown()
	}
})

var _ = ginkgo.Describe("[Ping]", func() {
	ginkgo.It("can ping", func() {
		for _, inst := range instances {
			ok, err := inst.cli.Ping()
			gomega.Ω(ok).Should(gomega.BeTrue())
			gomega.Ω(err).Should(gomega.BeNil())
		}
	})
})

var _ = ginkgo.Describe("[Staking]", ginkgo.Ordered, func() {
	var (
		inst     instance
		ctx      context.Context
		cancel   context.CancelFunc
		stakeKey ecommon.Address
	)

	ginkgo.BeforeAll(func() {
		inst = instances[0]
		ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)
	})

	ginkgo.AfterAll(func() {
		cancel()
	})

	issue := func(i *chain.Input, priv *ecdsa.PrivateKey) error {
		_, err := client.BuildSignIssueTx(ctx, inst.cli, i, priv)
		return err
	}

	ginkgo.It("has no activity yet", func() {
		activity, err := inst.cli.RecentActivity()
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(activity).Should(gomega.BeEmpty())
	})

	ginkgo.It("stakes the asset", func() {
		gomega.Ω(issue(&chain.Input{
			Typ:           chain.Stake,
			AssetAccount:  assetAccount,
			AssetID:       assetMint,
			RewardAccount: rewardAccount,
			Delegate:      delegate,
		}, playerPriv)).Should(gomega.BeNil())

		addr, r, pending, err := inst.cli.StakeInfo(player, assetMint, delegate)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(r.Owner).Should(gomega.Equal(player))
		gomega.Ω(r.CreatedAt).Should(gomega.Equal(uint64(startTime)))
		gomega.Ω(r.ClaimedAt).Should(gomega.Equal(uint64(startTime)))
		gomega.Ω(r.AccrualRate).Should(gomega.Equal(rate))
		gomega.Ω(pending).Should(gomega.BeZero())
		stakeKey = addr

		a, _, err := inst.cli.Account(assetAccount)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(a.Authority).Should(gomega.Equal(stakeKey))

		staked, err := inst.cli.Staked(player)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(staked).Should(gomega.HaveLen(1))
		gomega.Ω(staked[0].Address).Should(gomega.Equal(stakeKey))
	})

	ginkgo.It("rejects a claim before bootstrap", func() {
		err := issue(&chain.Input{Typ: chain.Claim, Owner: player, AssetID: assetMint, Delegate: delegate}, playerPriv)
		gomega.Ω(err).ShouldNot(gomega.BeNil())
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring(chain.ErrVaultNotInitialized.Error()))
	})

	ginkgo.It("bootstraps the delegate config", func() {
		gomega.Ω(issue(&chain.Input{Typ: chain.Bootstrap, Vault: vault}, delegatePriv)).Should(gomega.BeNil())

		cfgAddr, cfg, err := inst.cli.ConfigInfo(delegate)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(cfg.VaultInitialized).Should(gomega.BeTrue())

		a, exists, err := inst.cli.Account(vault)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(exists).Should(gomega.BeTrue())
		gomega.Ω(a.Authority).Should(gomega.Equal(cfgAddr))
	})

	ginkgo.It("rejects a second bootstrap", func() {
		err := issue(&chain.Input{Typ: chain.Bootstrap, Vault: vault}, delegatePriv)
		gomega.Ω(err).ShouldNot(gomega.BeNil())
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring(chain.ErrAlreadyInitialized.Error()))
	})

	ginkgo.It("rejects a second stake of the same asset", func() {
		err := issue(&chain.Input{
			Typ:           chain.Stake,
			AssetAccount:  assetAccount,
			AssetID:       assetMint,
			RewardAccount: rewardAccount,
			Delegate:      delegate,
		}, playerPriv)
		gomega.Ω(err).ShouldNot(gomega.BeNil())
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring(chain.ErrRecordExists.Error()))
	})

	ginkgo.It("claims the accrued reward", func() {
		inst.clock.Advance(100)
		gomega.Ω(issue(&chain.Input{Typ: chain.Claim, Owner: player, AssetID: assetMint, Delegate: delegate}, playerPriv)).Should(gomega.BeNil())

		bal, err := inst.cli.Balance(rewardAccount)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(bal).Should(gomega.Equal(100 * rate))

		inst.clock.Advance(50)
		gomega.Ω(issue(&chain.Input{Typ: chain.Claim, Owner: player, AssetID: assetMint, Delegate: delegate}, playerPriv)).Should(gomega.BeNil())

		bal, err = inst.cli.Balance(rewardAccount)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(bal).Should(gomega.Equal(150 * rate))

		bal, err = inst.cli.Balance(vault)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(bal).Should(gomega.Equal(vaultFunds - 150*rate))
	})

	ginkgo.It("rejects a claim by someone else", func() {
		err := issue(&chain.Input{Typ: chain.Claim, Owner: player, AssetID: assetMint, Delegate: delegate}, delegatePriv)
		gomega.Ω(err).ShouldNot(gomega.BeNil())
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring(chain.ErrNotOwner.Error()))
	})

	ginkgo.It("unstakes and forfeits the unclaimed reward", func() {
		inst.clock.Advance(30)
		_, _, pending, err := inst.cli.StakeInfo(player, assetMint, delegate)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(pending).Should(gomega.Equal(30 * rate))

		gomega.Ω(issue(&chain.Input{Typ: chain.Unstake, Owner: player, AssetID: assetMint, Delegate: delegate}, playerPriv)).Should(gomega.BeNil())

		a, _, err := inst.cli.Account(assetAccount)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(a.Authority).Should(gomega.Equal(player))

		bal, err := inst.cli.Balance(rewardAccount)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(bal).Should(gomega.Equal(150 * rate))

		staked, err := inst.cli.Staked(player)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(staked).Should(gomega.BeEmpty())
	})

	ginkgo.It("rejects operations on a removed record", func() {
		for _, typ := range []string{chain.Claim, chain.Unstake} {
			err := issue(&chain.Input{Typ: typ, Owner: player, AssetID: assetMint, Delegate: delegate}, playerPriv)
			gomega.Ω(err).ShouldNot(gomega.BeNil())
			gomega.Ω(err.Error()).Should(gomega.ContainSubstring(chain.ErrRecordNotFound.Error()))
		}
	})

	ginkgo.It("records the activity newest first", func() {
		activity, err := inst.cli.RecentActivity()
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(activity).Should(gomega.HaveLen(5))
		gomega.Ω(activity[0].Typ).Should(gomega.Equal(chain.Unstake))
		gomega.Ω(activity[4].Typ).Should(gomega.Equal(chain.Stake))
	})
})

var _ = ginkgo.Describe("[Isolation]", func() {
	ginkgo.It("keeps each vm's state to itself", func() {
		for _, inst := range instances[1:] {
			_, _, err := inst.cli.ConfigInfo(delegate)
			gomega.Ω(err).ShouldNot(gomega.BeNil())

			bal, err := inst.cli.Balance(vault)
			gomega.Ω(err).Should(gomega.BeNil())
			gomega.Ω(bal).Should(gomega.Equal(uint64(vaultFunds)))
		}
	})
})
