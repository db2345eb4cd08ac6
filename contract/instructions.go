package main

//
// Instruction handlers. Each one parses its '|' separated payload, runs the
// game rules and persists the result. Any abort reverts the whole call.
//

// setupGame opens game <gameId> between the sender and playerTwo.
//
// Payload: "gameId|playerTwo"
func setupGame(payload *string, chain Chain) *string {
	require(chain, payload != nil, "payload missing")
	in := *payload
	gameID := nextField(&in)
	playerTwo := nextField(&in)
	require(chain, in == "", "too many arguments")
	validateGameID(chain, gameID)
	require(chain, playerTwo != "", "player two missing")

	playerOne := sender(chain)

	g := loadGame(chain, gameID)
	if g == nil {
		g = &Game{ID: gameID}
	}
	abortOnError(chain, g.Start([2]string{playerOne, playerTwo}))

	now := blockTime(chain)
	g.CreatedAt = now
	g.UpdatedAt = now
	saveGame(chain, g)

	EmitGameCreated(chain, g)
	ret := g.ID
	return &ret
}

// play places the sender's sign on the given tile.
//
// Payload: "gameId|row|column"
func play(payload *string, chain Chain) *string {
	require(chain, payload != nil, "payload missing")
	in := *payload
	gameID := nextField(&in)
	row := parseTileCoord(chain, nextField(&in))
	col := parseTileCoord(chain, nextField(&in))
	require(chain, in == "", "too many arguments")

	player := sender(chain)
	g := mustLoadGame(chain, gameID)

	// turn check comes first so a finished game still reports whose move it
	// would have been
	if current := g.CurrentPlayer(); current != player {
		abortOnError(chain, newError(NotPlayersTurn, "expected "+current+", got "+player))
	}

	tile := Tile{Row: row, Column: col}
	abortOnError(chain, g.Play(tile))
	g.UpdatedAt = blockTime(chain)
	saveGame(chain, g)

	EmitGameMove(chain, g, player, tile)
	switch g.State {
	case Won:
		EmitGameWon(chain, g)
	case Tie:
		EmitGameTie(chain, g)
	}
	return nil
}

// getGame renders a stored game as
// "id|playerOne|playerTwo|turn|state|winner|createdAt|updatedAt|board".
//
// Payload: "gameId"
func getGame(payload *string, chain Chain) *string {
	require(chain, payload != nil, "payload missing")
	in := *payload
	gameID := nextField(&in)
	require(chain, in == "", "too many arguments")

	g := mustLoadGame(chain, gameID)

	out := make([]byte, 0, 48+len(g.ID)+len(g.Players[0])+len(g.Players[1])+len(g.Winner))
	out = append(out, g.ID...)
	out = append(out, '|')
	out = append(out, g.Players[0]...)
	out = append(out, '|')
	out = append(out, g.Players[1]...)
	out = append(out, '|')
	out = appendU8(out, g.Turn)
	out = append(out, '|')
	out = appendU8(out, uint8(g.State))
	out = append(out, '|')
	out = append(out, g.Winner...)
	out = append(out, '|')
	out = appendU64(out, g.CreatedAt)
	out = append(out, '|')
	out = appendU64(out, g.UpdatedAt)
	out = append(out, '|')
	out = append(out, asciiBoard(&g.Board)...)
	s := string(out)
	return &s
}

func validateGameID(chain Chain, id string) {
	require(chain, id != "", "game id missing")
	require(chain, len(id) <= maxGameIDLen, "game id too long")
}

// asciiBoard flattens the board row-major, one '0','1','2' per cell.
func asciiBoard(board *[boardSide][boardSide]Sign) []byte {
	out := make([]byte, 0, boardSide*boardSide)
	for r := 0; r < boardSide; r++ {
		for c := 0; c < boardSide; c++ {
			out = append(out, byte('0'+board[r][c]))
		}
	}
	return out
}
