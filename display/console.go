package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"gamesmith/game"
)

// Console renders states as colorized text boards.
type Console struct {
	out *termenv.Output
}

func NewConsole(w io.Writer) *Console {
	return &Console{out: termenv.NewOutput(w)}
}

func (c *Console) Start(state game.State) {
	fmt.Fprintf(c.out, "%s\n\n", c.board(state))
}

func (c *Console) Update(state game.State, player string, action game.Action) {
	header := c.out.String(fmt.Sprintf("%s played %s", player, action)).Bold()
	fmt.Fprintf(c.out, "%s\n%s\n\n", header, c.board(state))
}

func (c *Console) Finish(state game.State, winner string) {
	result := "draw"
	if winner != "" {
		result = winner + " wins"
	}
	fmt.Fprintf(c.out, "%s\n", c.out.String(result).Bold().Underline())
}

// board colorizes the marks in the state's text rendering.
func (c *Console) board(state game.State) string {
	profile := c.out.ColorProfile()
	x := c.out.String("X").Foreground(profile.Color("1")).String()
	o := c.out.String("O").Foreground(profile.Color("4")).String()

	replacer := strings.NewReplacer("X", x, "O", o)
	return replacer.Replace(fmt.Sprintf("%v", state))
}
