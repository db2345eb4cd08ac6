package main

// Sign is the mark a player leaves on a tile.
type Sign uint8

const (
	NoSign Sign = 0
	X      Sign = 1 // player one
	O      Sign = 2 // player two
)

// signFor maps a player index to its sign.
func signFor(playerIndex int) Sign {
	if playerIndex == 0 {
		return X
	}
	return O
}

// GameState is the lifecycle of a game.
type GameState uint8

const (
	Active GameState = 0
	Tie    GameState = 1
	Won    GameState = 2
)

func (s GameState) String() string {
	switch s {
	case Active:
		return "active"
	case Tie:
		return "tie"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

const boardSide = 3

// Tile addresses one board cell.
type Tile struct {
	Row    uint8
	Column uint8
}

func (t Tile) inBounds() bool { return t.Row < boardSide && t.Column < boardSide }

// index is the row-major cell number 0..8.
func (t Tile) index() uint8 { return t.Row*boardSide + t.Column }

// Game is the full persisted state of one match.
//
// Turn is 0 before Start and counts moves from 1 afterwards. It is not
// advanced by the move that ends the game.
type Game struct {
	ID        string
	Players   [2]string
	Turn      uint8
	Board     [boardSide][boardSide]Sign
	State     GameState
	Winner    string // set when State == Won
	CreatedAt uint64 // unix seconds
	UpdatedAt uint64
}
