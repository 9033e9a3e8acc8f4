// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines storage key and identity parsing operations.
package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	Delimiter          = "/"
	ByteDelimiter byte = '/'
)

var (
	ErrInvalidAddress = errors.New("addresses must be ^0x[0-9a-fA-F]{40}$")
	ErrZeroAddress    = errors.New("address cannot be zero")
	ErrInvalidPath    = errors.New("path is not of the form owner/asset")

	reg *regexp.Regexp
)

func init() {
	reg = regexp.MustCompile("^0x[0-9a-fA-F]{40}$")
}

// ParseAddress returns the identity encoded by [s]. The zero address is
// reserved and never a valid identity.
func ParseAddress(s string) (common.Address, error) {
	if !reg.MatchString(s) {
		return common.Address{}, ErrInvalidAddress
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, ErrZeroAddress
	}
	return addr, nil
}

// ResolvePath splits an "owner/asset" pair as accepted by the CLI.
func ResolvePath(path string) (owner common.Address, asset common.Address, err error) {
	segments := strings.Split(path, Delimiter)
	if len(segments) != 2 {
		return common.Address{}, common.Address{}, ErrInvalidPath
	}
	owner, err = ParseAddress(segments[0])
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	asset, err = ParseAddress(segments[1])
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	return owner, asset, nil
}
