package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := &Game{ID: "g1"}
	assert.NoError(t, g.Start([2]string{"hive:alice", "hive:bob"}))
	return g
}

func playAll(t *testing.T, g *Game, tiles ...Tile) {
	t.Helper()
	for _, tile := range tiles {
		assert.NoError(t, g.Play(tile), "tile %+v", tile)
	}
}

func TestStart(t *testing.T) {
	g := startedGame(t)
	assert.Equal(t, uint8(1), g.Turn)
	assert.Equal(t, Active, g.State)
	assert.Equal(t, [2]string{"hive:alice", "hive:bob"}, g.Players)
	assert.Equal(t, [3][3]Sign{}, g.Board)
	assert.Equal(t, "hive:alice", g.CurrentPlayer())

	err := g.Start([2]string{"hive:carol", "hive:dave"})
	assert.ErrorIs(t, err, &ProgramError{Code: GameAlreadyStarted})
	assert.Equal(t, [2]string{"hive:alice", "hive:bob"}, g.Players)
}

func TestPlayAlternatesSigns(t *testing.T) {
	g := startedGame(t)

	playAll(t, g, Tile{0, 0})
	assert.Equal(t, uint8(2), g.Turn)
	assert.Equal(t, "hive:bob", g.CurrentPlayer())
	assert.Equal(t, X, g.Board[0][0])

	playAll(t, g, Tile{1, 0})
	assert.Equal(t, uint8(3), g.Turn)
	assert.Equal(t, O, g.Board[1][0])
	assert.Equal(t, 0, g.CurrentPlayerIndex())
}

func TestPlayErrors(t *testing.T) {
	g := startedGame(t)
	playAll(t, g, Tile{0, 0})

	err := g.Play(Tile{Row: 5, Column: 1})
	var perr *ProgramError
	if assert.True(t, errors.As(err, &perr)) {
		assert.Equal(t, TileOutOfBounds, perr.Code)
		assert.Equal(t, "TileOutOfBounds (6000): row 5, column 1", perr.Error())
	}

	err = g.Play(Tile{Row: 0, Column: 3})
	assert.ErrorIs(t, err, &ProgramError{Code: TileOutOfBounds})

	err = g.Play(Tile{Row: 0, Column: 0})
	assert.ErrorIs(t, err, &ProgramError{Code: TileAlreadySet})

	// rejected moves leave the game untouched
	assert.Equal(t, uint8(2), g.Turn)
	assert.Equal(t, NoSign, g.Board[1][0])
}

func TestPlayerOneWinsRow(t *testing.T) {
	g := startedGame(t)
	playAll(t, g, Tile{0, 0}, Tile{1, 0}, Tile{0, 1}, Tile{1, 1}, Tile{0, 2})

	assert.Equal(t, Won, g.State)
	assert.Equal(t, "hive:alice", g.Winner)
	assert.Equal(t, uint8(5), g.Turn, "winning move does not advance the turn")

	err := g.Play(Tile{2, 2})
	assert.ErrorIs(t, err, &ProgramError{Code: GameAlreadyOver})
	assert.Equal(t, NoSign, g.Board[2][2])
}

func TestPlayerTwoWinsDiagonal(t *testing.T) {
	g := startedGame(t)
	playAll(t, g, Tile{0, 0}, Tile{0, 2}, Tile{0, 1}, Tile{1, 1}, Tile{2, 2}, Tile{2, 0})

	assert.Equal(t, Won, g.State)
	assert.Equal(t, "hive:bob", g.Winner)
	assert.Equal(t, uint8(6), g.Turn)
}

func TestTie(t *testing.T) {
	g := startedGame(t)
	playAll(t, g,
		Tile{0, 0}, Tile{1, 1}, Tile{2, 0}, Tile{1, 0}, Tile{1, 2},
		Tile{0, 1}, Tile{2, 1}, Tile{2, 2}, Tile{0, 2},
	)

	assert.Equal(t, Tie, g.State)
	assert.Empty(t, g.Winner)
	assert.Equal(t, uint8(9), g.Turn)
	assert.Equal(t, [3][3]Sign{
		{X, O, X},
		{O, O, X},
		{X, X, O},
	}, g.Board)

	err := g.Play(Tile{0, 0})
	assert.ErrorIs(t, err, &ProgramError{Code: GameAlreadyOver})
}

func TestWinOnLastTileIsNotATie(t *testing.T) {
	g := startedGame(t)
	// X fills the board and completes the left column with its fifth sign
	playAll(t, g,
		Tile{0, 0}, Tile{0, 1}, Tile{1, 0}, Tile{1, 1}, Tile{2, 1},
		Tile{0, 2}, Tile{1, 2}, Tile{2, 2}, Tile{2, 0},
	)
	assert.Equal(t, Won, g.State)
	assert.Equal(t, "hive:alice", g.Winner)
}

func TestCompletesLine(t *testing.T) {
	tests := []struct {
		name   string
		board  [3][3]Sign
		row    int
		col    int
		expect bool
	}{
		{"row", [3][3]Sign{{X, X, X}}, 0, 1, true},
		{"column", [3][3]Sign{{O}, {O}, {O}}, 2, 0, true},
		{"diagonal", [3][3]Sign{{X}, {0, X}, {0, 0, X}}, 1, 1, true},
		{"anti diagonal", [3][3]Sign{{0, 0, O}, {0, O}, {O}}, 0, 2, true},
		{"mixed", [3][3]Sign{{X, O, X}}, 0, 2, false},
		{"two only", [3][3]Sign{{X, X}}, 0, 1, false},
		{"empty cell", [3][3]Sign{{X, X, 0}}, 0, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, completesLine(&tt.board, tt.row, tt.col))
		})
	}
}
