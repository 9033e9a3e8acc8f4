// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stakingvm"

type metrics struct {
	txsAccepted *prometheus.CounterVec
	txsRejected *prometheus.CounterVec
	rewardsPaid prometheus.Counter
	compactions prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		txsAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_accepted",
			Help:      "Number of transactions executed and committed",
		}, []string{"type"}),
		txsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "txs_rejected",
			Help:      "Number of transactions whose execution was aborted",
		}, []string{"type"}),
		rewardsPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewards_paid",
			Help:      "Reward base units paid out by claims",
		}),
		compactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compactions",
			Help:      "Number of record ranges compacted",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsAccepted),
		r.Register(m.txsRejected),
		r.Register(m.rewardsPaid),
		r.Register(m.compactions),
	)
	return m, errs.Err
}
