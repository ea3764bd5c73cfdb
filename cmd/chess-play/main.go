// Package main implements the interactive console game.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"chessgame/internal/cli"
	"chessgame/internal/core"
	"chessgame/internal/game"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".chessgame_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	view := cli.New(os.Stdout)
	// Color themes need a real terminal; keep plain output for pipes.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		view.SetTheme(cli.ThemeBrown)
	}

	view.ShowWelcome()

	var g *game.Game
	for {
		rl.SetPrompt(prompt(g))
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !process(line, &g, view) {
			break
		}
	}
}

func prompt(g *game.Game) string {
	if g == nil {
		return "> "
	}
	return fmt.Sprintf("[%c]> ", g.Turn())
}

// process handles one command line; it returns false to exit.
func process(line string, g **game.Game, view *cli.View) bool {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "quit", "exit":
		return false

	case "help", "?":
		view.ShowHelp()

	case "new":
		*g = game.New("White", "Black")
		view.DisplayBoard((*g).State().Board)

	case "resume":
		if len(args) < 1 {
			view.ShowMessage("Usage: resume <FEN string>")
			return true
		}
		resumed, err := game.Resume(strings.Join(args, " "), "White", "Black")
		if err != nil {
			view.ShowError(err)
			return true
		}
		*g = resumed
		view.DisplayBoard((*g).State().Board)

	case "color":
		if len(args) != 1 {
			view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		if err := view.SetTheme(cli.ColorTheme(args[0])); err != nil {
			view.ShowError(err)
		}

	case "history":
		if *g == nil {
			view.ShowMessage("No active game. Use 'new' or 'resume <FEN>'.")
			return true
		}
		view.ShowGameHistory(*g)

	default:
		// Assume it's a move
		if *g == nil {
			view.ShowMessage("No active game. Use 'new' or 'resume <FEN>'.")
			return true
		}
		m, err := core.ParseUCI(cmd)
		if err != nil {
			view.ShowError(err)
			return true
		}
		result, err := (*g).Apply(m)
		if err != nil {
			view.ShowRejection(m, err)
			return true
		}
		view.ShowMoveResult(result)
		view.DisplayBoard((*g).State().Board)
	}
	return true
}
