// Package main implements the moves-file driver: it reads a file of
// four-integer move records, validates and applies each one in order,
// and prints the board and move announcements to the console.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"chessgame/internal/cli"
	"chessgame/internal/game"
	"chessgame/internal/moves"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <moves-file>\n", os.Args[0])
		os.Exit(2)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open moves file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	view := cli.New(os.Stdout)
	if err := run(moves.New(f), view); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run plays through the move source on a fresh game. Rule rejections
// are reported and skipped; a malformed record stops processing with
// an error; clean exhaustion ends the game normally.
func run(src *moves.Source, view *cli.View) error {
	state := game.NewState()
	view.DisplayBoard(state.Board)

	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			view.ShowMessage("No more moves - game over.")
			return nil
		}
		if err != nil {
			return err
		}

		m := rec.Move()
		next, result, err := game.Apply(state, m)
		if err != nil {
			view.ShowRejection(m, err)
			if game.IsRuleError(err) {
				continue
			}
			return err
		}

		state = next
		view.ShowMoveResult(result)
		view.DisplayBoard(state.Board)
	}
}
