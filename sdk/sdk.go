//go:build wasm

// Package sdk binds the VSC contract host functions.
package sdk

//go:wasmimport sdk console.log
func log(s *string) *string

//go:wasmimport sdk db.setObject
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.getObject
func stateGetObject(key *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

// Log writes a line to the contract output log.
func Log(s string) {
	log(&s)
}

func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject returns nil when nothing is stored under key.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// GetEnvKey reads a single env value such as "msg.sender" or "block.timestamp".
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// Abort stops execution and reverts every state write of the call.
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}
