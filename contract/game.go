package main

//
// Game rules: setup, turn order, sign placement and the end-of-game check.
// Nothing here touches the chain so it can be exercised directly.
//

// Start seats both players and opens the game with player one to move.
func (g *Game) Start(players [2]string) error {
	if g.Turn != 0 {
		return newError(GameAlreadyStarted, "game "+g.ID)
	}
	g.Players = players
	g.Turn = 1
	g.State = Active
	return nil
}

func (g *Game) IsActive() bool { return g.State == Active }

// CurrentPlayerIndex is 0 for player one and 1 for player two.
func (g *Game) CurrentPlayerIndex() int {
	return int((g.Turn - 1) % 2)
}

func (g *Game) CurrentPlayer() string {
	return g.Players[g.CurrentPlayerIndex()]
}

// Play puts the current player's sign on tile and settles the game state.
func (g *Game) Play(tile Tile) error {
	if !g.IsActive() {
		return newError(GameAlreadyOver, "game is "+g.State.String())
	}
	if !tile.inBounds() {
		return newError(TileOutOfBounds, "row "+UInt64ToString(uint64(tile.Row))+
			", column "+UInt64ToString(uint64(tile.Column)))
	}
	if g.Board[tile.Row][tile.Column] != NoSign {
		return newError(TileAlreadySet, "row "+UInt64ToString(uint64(tile.Row))+
			", column "+UInt64ToString(uint64(tile.Column)))
	}

	g.Board[tile.Row][tile.Column] = signFor(g.CurrentPlayerIndex())
	g.updateState(tile)

	if g.IsActive() {
		g.Turn++
	}
	return nil
}

// updateState closes the game when the last placed sign completes a line
// or fills the board.
func (g *Game) updateState(last Tile) {
	if completesLine(&g.Board, int(last.Row), int(last.Column)) {
		g.State = Won
		g.Winner = g.CurrentPlayer()
		return
	}
	for r := 0; r < boardSide; r++ {
		for c := 0; c < boardSide; c++ {
			if g.Board[r][c] == NoSign {
				return
			}
		}
	}
	g.State = Tie
}

// completesLine reports whether the sign at (row,col) now sits in a full
// row, column or diagonal. Walks both ways along each direction and counts
// matching signs.
func completesLine(board *[boardSide][boardSide]Sign, row, col int) bool {
	mark := board[row][col]
	if mark == NoSign {
		return false
	}

	dirs := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for _, d := range dirs {
		count := 1

		// forward
		fr, fc := row+d[0], col+d[1]
		for onBoard(fr, fc) && board[fr][fc] == mark {
			count++
			fr += d[0]
			fc += d[1]
		}

		// backward
		br, bc := row-d[0], col-d[1]
		for onBoard(br, bc) && board[br][bc] == mark {
			count++
			br -= d[0]
			bc -= d[1]
		}

		if count >= boardSide {
			return true
		}
	}
	return false
}

func onBoard(r, c int) bool { return r >= 0 && r < boardSide && c >= 0 && c < boardSide }
