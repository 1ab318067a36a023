package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

// DisplayStyles contains styling for the table display
type DisplayStyles struct {
	Dealer lipgloss.Style
	Player lipgloss.Style
	Active lipgloss.Style // label of the hand being played
	Value  lipgloss.Style
	Notice lipgloss.Style
}

// NewDisplayStyles creates the display styles on the given renderer
func NewDisplayStyles(r *lipgloss.Renderer) *DisplayStyles {
	return &DisplayStyles{
		Dealer: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Active: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Value: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Notice: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
	}
}

// Display prints the table to a terminal
type Display struct {
	out    io.Writer
	styles *DisplayStyles
}

// NewDisplay creates a display writing to out. With noColor set every style
// renders as plain text.
func NewDisplay(out io.Writer, noColor bool) *Display {
	renderer := lipgloss.NewRenderer(out)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Display{
		out:    out,
		styles: NewDisplayStyles(renderer),
	}
}

// Render prints the dealer line followed by one line per player hand
func (d *Display) Render(view blackjack.TableView) {
	dealerValue := "?"
	if view.Dealer.Revealed {
		dealerValue = strconv.Itoa(view.Dealer.Value)
	}
	fmt.Fprintf(d.out, "%s [%s] Value: %s\n",
		d.styles.Dealer.Render("Dealer:"),
		strings.Join(view.Dealer.Cards, ", "),
		d.styles.Value.Render(dealerValue))

	for i, hand := range view.Players {
		label := d.styles.Player
		if !view.Dealer.Revealed && i == view.ActiveHand {
			label = d.styles.Active
		}
		fmt.Fprintf(d.out, "%s [%s] Value: %s\n",
			label.Render(fmt.Sprintf("Player Hand %d:", i+1)),
			strings.Join(hand.Cards, ", "),
			d.styles.Value.Render(strconv.Itoa(hand.Value)))
	}
}

// Announce prints a single event line
func (d *Display) Announce(message string) {
	fmt.Fprintln(d.out, d.styles.Notice.Render(message))
}
