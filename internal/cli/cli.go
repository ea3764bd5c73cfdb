// Package cli is the console view shared by the chess binaries. It
// owns board display (with optional ANSI color themes) and the
// per-move announcements driven by the core's results.
package cli

import (
	"fmt"
	"io"
	"strings"

	"chessgame/internal/board"
	"chessgame/internal/core"
	"chessgame/internal/game"
)

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

type View struct {
	output io.Writer
	theme  ColorTheme
}

func New(output io.Writer) *View {
	return &View{output: output, theme: ThemeOff}
}

func (v *View) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	v.theme = theme
	return nil
}

func (v *View) ShowMessage(msg string) {
	fmt.Fprintln(v.output, msg)
}

func (v *View) ShowError(err error) {
	v.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// DisplayBoard prints the board, plain for ThemeOff or with checkered
// ANSI backgrounds otherwise.
func (v *View) DisplayBoard(b board.Board) {
	if v.theme == ThemeOff {
		v.ShowMessage(b.Render())
		return
	}

	theme := themes[v.theme]
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := 7; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := 0; f < 8; f++ {
			bg := theme.darkBg
			if (r+f)%2 == 1 {
				bg = theme.lightBg
			}
			pc := b.At(core.Position{File: f, Rank: r})
			if pc == nil {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			} else {
				color := theme.black
				if pc.Color == core.ColorWhite {
					color = theme.white
				}
				sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, pc.Symbol(), theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h")
	v.ShowMessage(sb.String())
}

// ShowMoveResult announces an accepted move: mover, squares, capture
// details, and a check warning when the opponent's king is attacked.
func (v *View) ShowMoveResult(result *game.MoveResult) {
	v.ShowMessage(fmt.Sprintf("%s moves %s to %s",
		result.Piece, result.From.Notation(), result.To.Notation()))
	if result.Captured != nil {
		v.ShowMessage(fmt.Sprintf("%s captures %s on %s",
			result.Piece, *result.Captured, result.To.Notation()))
	}
	if result.Check {
		v.ShowMessage(fmt.Sprintf("%s is in check!", result.Piece.Color.Opposite()))
	}
}

// ShowRejection announces a rejected move with its reason.
func (v *View) ShowRejection(m core.Move, err error) {
	v.ShowMessage(fmt.Sprintf("Move %s rejected: %v", m.UCI(), err))
}

func (v *View) ShowGameHistory(g *game.Game) {
	v.ShowMessage(fmt.Sprintf("Starting FEN: %s", g.InitialFEN()))
	moves := g.Moves()
	for i := 0; i < len(moves); i += 2 {
		moveNum := i/2 + 1
		if i+1 < len(moves) {
			v.ShowMessage(fmt.Sprintf("%d. %s | %s", moveNum, moves[i], moves[i+1]))
		} else {
			v.ShowMessage(fmt.Sprintf("%d. %s | ...", moveNum, moves[i]))
		}
	}
	v.ShowMessage(fmt.Sprintf("Current FEN: %s", g.CurrentFEN()))
}

func (v *View) ShowHelp() {
	help := `Commands:
  new              - Start a new game
  resume <FEN>     - Resume from a specific board position
  <move>           - Make a move (e.g., e2e4, g1f3)
  color <theme>    - Set board color theme (off|brown|green|gray)
  history          - Show game move history and positions
  quit/exit        - Exit the program
  help/?           - Show this help message`
	v.ShowMessage(help)
}

func (v *View) ShowWelcome() {
	v.ShowMessage("Welcome to Chess!")
	v.ShowMessage("Commands: new, resume <FEN>, <move>, color <theme>, history, quit/exit, help/?")
	v.ShowMessage("Example: 'resume 4k3/8/8/8/8/8/8/4K2R w - - 0 1' to start from a puzzle.")
	v.ShowMessage("")
}
