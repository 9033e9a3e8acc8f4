// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"time"
)

type Config struct {
	CompactInterval time.Duration `serialize:"true" json:"compactInterval"`

	ActivityCacheSize int `serialize:"true" json:"activityCacheSize"`
}

func (c *Config) SetDefaults() {
	c.CompactInterval = 1 * time.Minute
	c.ActivityCacheSize = 128
}
