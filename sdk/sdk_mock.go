//go:build !wasm

package sdk

// Native builds have no host. The contract reaches the chain through an
// interface, so these only need to link.

func StateSetObject(key, value string)  {}
func StateGetObject(key string) *string { return nil }
func Abort(msg string)                  { panic(msg) }
func Log(msg string)                    {}
func GetEnvKey(key string) *string      { return nil }
