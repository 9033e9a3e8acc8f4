// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"sync"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/stretchr/testify/require"
)

func TestManualClock(t *testing.T) {
	c := NewManualClock(100)
	require.Equal(t, uint64(100), c.Unix())
	c.Advance(50)
	require.Equal(t, uint64(150), c.Unix())
	c.Set(10)
	require.Equal(t, uint64(10), c.Unix())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(1)
			_ = c.Unix()
		}()
	}
	wg.Wait()
	require.Equal(t, uint64(18), c.Unix())
}

func TestWallClock(t *testing.T) {
	var c Clock = &mockable.Clock{}
	before := uint64(time.Now().Unix())
	now := c.Unix()
	require.GreaterOrEqual(t, now, before)
	require.LessOrEqual(t, now, uint64(time.Now().Unix()))
}
