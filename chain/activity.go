// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

const (
	Bootstrap = "bootstrap"
	Stake     = "stake"
	Claim     = "claim"
	Unstake   = "unstake"
)

type Activity struct {
	Tmstmp   uint64 `json:"timestamp"`
	TxID     string `json:"txId"`
	Sender   string `json:"sender"`
	Typ      string `json:"type"`
	Delegate string `json:"delegate,omitempty"`
	AssetID  string `json:"assetId,omitempty"`
	Account  string `json:"account,omitempty"` // vault or asset account
	Amount   uint64 `json:"amount,omitempty"`
}
