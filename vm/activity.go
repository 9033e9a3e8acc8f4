// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/lcances/shapz-nft-game/chain"
)

func (vm *VM) recordActivity(a *chain.Activity) {
	if vm.config.ActivityCacheSize <= 0 {
		return
	}
	vm.activityCacheLock.Lock()
	defer vm.activityCacheLock.Unlock()

	vm.activityCache[vm.activityCacheCursor%uint64(len(vm.activityCache))] = a
	vm.activityCacheCursor++
}

// RecentActivity returns the most recent successful operations, newest first.
func (vm *VM) RecentActivity() []*chain.Activity {
	vm.activityCacheLock.RLock()
	defer vm.activityCacheLock.RUnlock()

	size := uint64(len(vm.activityCache))
	if size == 0 {
		return nil
	}
	activity := make([]*chain.Activity, 0, size)
	for i := uint64(0); i < size && i < vm.activityCacheCursor; i++ {
		activity = append(activity, vm.activityCache[(vm.activityCacheCursor-1-i)%size])
	}
	return activity
}
