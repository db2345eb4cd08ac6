package main

import (
	"tic-tac-toe/sdk"
)

// --- Chain abstraction ---

// Chain is the slice of the host the contract needs. Entry points hand in
// RealChain; tests hand in an in-memory fake.
type Chain interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	GetEnvKey(key string) *string
	Log(msg string)
	Abort(msg string)
}

// RealChain forwards to the wasm host imports.
type RealChain struct{}

func (RealChain) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealChain) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealChain) GetEnvKey(key string) *string      { return sdk.GetEnvKey(key) }
func (RealChain) Log(msg string)                    { sdk.Log(msg) }
func (RealChain) Abort(msg string)                  { sdk.Abort(msg) }

// sender returns the address that signed the current call.
func sender(chain Chain) string {
	s := chain.GetEnvKey("msg.sender")
	require(chain, s != nil && *s != "", "sender missing")
	return *s
}

// blockTime returns the current block timestamp in unix seconds.
func blockTime(chain Chain) uint64 {
	ts := chain.GetEnvKey("block.timestamp")
	require(chain, ts != nil && len(*ts) >= 19, "block timestamp missing")
	return parseISO8601ToUnix(*ts)
}
