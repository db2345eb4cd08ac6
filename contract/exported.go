//go:build wasm

package main

// ---------- Entry: Setup ----------
//
//go:wasmexport setup_game
func SetupGame(payload *string) *string {
	return setupGame(payload, RealChain{})
}

// ---------- Entry: Play ----------
//
//go:wasmexport play
func Play(payload *string) *string {
	return play(payload, RealChain{})
}

// ---------- Query ----------
//
//go:wasmexport get_game
func GetGame(payload *string) *string {
	return getGame(payload, RealChain{})
}
