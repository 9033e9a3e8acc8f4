// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
)

var (
	ErrInputIsNil     = errors.New("input is nil")
	ErrInvalidEmptyTx = errors.New("invalid empty transaction")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrShutdown       = errors.New("vm is shut down")
)
