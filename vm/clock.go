// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/utils/timer/mockable"
)

// Clock is the time source a transaction executes at, in unix seconds.
type Clock interface {
	Unix() uint64
}

var (
	_ Clock = &mockable.Clock{}
	_ Clock = &ManualClock{}
)

// ManualClock is a mockable.Clock that is safe to move while the vm reads
// it. It only moves when told to.
type ManualClock struct {
	l     sync.Mutex
	clock mockable.Clock
}

func NewManualClock(now uint64) *ManualClock {
	c := &ManualClock{}
	c.clock.Set(time.Unix(int64(now), 0))
	return c
}

func (c *ManualClock) Unix() uint64 {
	c.l.Lock()
	defer c.l.Unlock()
	return c.clock.Unix()
}

func (c *ManualClock) Set(now uint64) {
	c.l.Lock()
	defer c.l.Unlock()
	c.clock.Set(time.Unix(int64(now), 0))
}

func (c *ManualClock) Advance(seconds uint64) {
	c.l.Lock()
	defer c.l.Unlock()
	c.clock.Set(c.clock.Time().Add(time.Duration(seconds) * time.Second))
}
