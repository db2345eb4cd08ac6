package main

import (
	"encoding/binary"
)

// ---------- Binary State Codec ----------

// codecVersion increments when storage encoding changes.
const codecVersion uint8 = 1

const maxGameIDLen = 64

// gameKey constructs the state key for storing a game.
// Format: "g_<gameId>"
func gameKey(id string) string { return "g_" + id }

// saveGame serializes the game and writes it to chain state.
func saveGame(chain Chain, g *Game) {
	chain.StateSetObject(gameKey(g.ID), string(encodeGame(chain, g)))
}

// loadGame returns the stored game, or nil when the id is unused.
func loadGame(chain Chain, id string) *Game {
	val := chain.StateGetObject(gameKey(id))
	if val == nil || *val == "" {
		return nil
	}
	g := decodeGame(chain, []byte(*val))
	g.ID = id
	return g
}

// mustLoadGame is loadGame for entry points that need an existing game.
func mustLoadGame(chain Chain, id string) *Game {
	g := loadGame(chain, id)
	require(chain, g != nil, "game not found")
	return g
}

// encodeGame packs a game into its storage blob.
//
// Layout:
//
//	version | Turn | State | Board (3 bytes) | CreatedAt | UpdatedAt | PlayerOne | PlayerTwo | Winner?
//
// Strings are u16 length prefixed; Winner is a flag byte plus string.
// The id is the key and is not repeated in the value.
func encodeGame(chain Chain, g *Game) []byte {
	out := make([]byte, 0, 24+len(g.Players[0])+len(g.Players[1])+len(g.Winner))

	out = append(out, codecVersion, g.Turn, byte(g.State))
	out = append(out, packBoard(&g.Board)...)
	out = binary.BigEndian.AppendUint64(out, g.CreatedAt)
	out = binary.BigEndian.AppendUint64(out, g.UpdatedAt)
	out = appendString16(chain, out, g.Players[0])
	out = appendString16(chain, out, g.Players[1])
	if g.State == Won {
		out = append(out, 1)
		out = appendString16(chain, out, g.Winner)
	} else {
		out = append(out, 0)
	}
	return out
}

// decodeGame rebuilds a game from its blob and rejects trailing bytes.
func decodeGame(chain Chain, b []byte) *Game {
	r := &rd{b: b, chain: chain}
	require(chain, r.u8() == codecVersion, "unsupported version")

	g := &Game{}
	g.Turn = r.u8()
	g.State = GameState(r.u8())
	require(chain, g.State <= Won, "invalid game state")
	g.Board = unpackBoard(chain, r.bytes(packedBoardLen))
	g.CreatedAt = r.u64()
	g.UpdatedAt = r.u64()
	g.Players[0] = r.str()
	g.Players[1] = r.str()
	if r.u8() == 1 {
		g.Winner = r.str()
	}
	r.mustEnd()
	return g
}

// ---------- Board packing ----------

// packedBoardLen is ceil(9 cells * 2 bits / 8).
const packedBoardLen = 3

// packBoard stores 2 bits per cell, row-major, 4 cells per byte.
func packBoard(board *[boardSide][boardSide]Sign) []byte {
	var out [packedBoardLen]byte
	for r := 0; r < boardSide; r++ {
		for c := 0; c < boardSide; c++ {
			idx := r*boardSide + c
			byteIdx, bitShift := idx/4, (idx%4)*2
			out[byteIdx] |= byte(board[r][c]&0x03) << bitShift
		}
	}
	return out[:]
}

func unpackBoard(chain Chain, b []byte) [boardSide][boardSide]Sign {
	var board [boardSide][boardSide]Sign
	for r := 0; r < boardSide; r++ {
		for c := 0; c < boardSide; c++ {
			idx := r*boardSide + c
			byteIdx, bitShift := idx/4, (idx%4)*2
			s := Sign((b[byteIdx] >> bitShift) & 0x03)
			require(chain, s <= O, "invalid cell")
			board[r][c] = s
		}
	}
	return board
}

// ---------- Reader ----------

// rd is a binary reader utility over a byte slice,
// providing big-endian integer reads with safety checks.
type rd struct {
	b     []byte // raw buffer
	i     int    // current read index
	chain Chain
}

// need ensures that n bytes are available from current position.
func (r *rd) need(n int) { require(r.chain, r.i+n <= len(r.b), "decode overflow") }

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

// str reads a length-prefixed string (2-byte length).
func (r *rd) str() string {
	l := int(r.u16())
	return string(r.bytes(l))
}

// mustEnd verifies that the reader consumed all bytes exactly.
func (r *rd) mustEnd() { require(r.chain, r.i == len(r.b), "trailing bytes") }

func appendString16(chain Chain, out []byte, s string) []byte {
	require(chain, len(s) <= 65535, "string too long")
	out = binary.BigEndian.AppendUint16(out, uint16(len(s)))
	return append(out, s...)
}
