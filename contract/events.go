package main

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent logs the event as one JSON line.
func emitEvent(chain Chain, eventType string, attributes map[string]string) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

// EmitGameCreated emits an event when a new game is set up.
func EmitGameCreated(chain Chain, g *Game) {
	emitEvent(chain, "gameCreated", map[string]string{
		"id":        g.ID,
		"playerOne": g.Players[0],
		"playerTwo": g.Players[1],
	})
}

// EmitGameMove emits an event for every accepted move.
// cell is the row-major tile index 0..8.
func EmitGameMove(chain Chain, g *Game, by string, tile Tile) {
	emitEvent(chain, "gameMove", map[string]string{
		"id":     g.ID,
		"moveBy": by,
		"cell":   UInt64ToString(uint64(tile.index())),
		"turn":   UInt64ToString(uint64(g.Turn)),
	})
}

func EmitGameWon(chain Chain, g *Game) {
	emitEvent(chain, "gameWon", map[string]string{
		"id":     g.ID,
		"winner": g.Winner,
	})
}

func EmitGameTie(chain Chain, g *Game) {
	emitEvent(chain, "gameTie", map[string]string{
		"id": g.ID,
	})
}
