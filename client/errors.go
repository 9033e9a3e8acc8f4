// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import "errors"

var ErrDigestMismatch = errors.New("digest returned by the vm does not match the transaction")
