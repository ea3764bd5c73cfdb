package moves

import "chessgame/internal/core"

// Move converts the raw record to internal coordinates. Input ranks
// count from the top of the board, so rank r maps to index 7-r.
func (r Record) Move() core.Move {
	return core.Move{
		From: core.Position{File: r.FromFile, Rank: 7 - r.FromRank},
		To:   core.Position{File: r.ToFile, Rank: 7 - r.ToRank},
	}
}
