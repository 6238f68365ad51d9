// Package display renders cards and evaluations for the terminal.
package display

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/handrank/internal/verify"
	"github.com/lox/handrank/poker"
)

var suitGlyphs = map[uint8]string{
	poker.Spades:   "♠",
	poker.Hearts:   "❤",
	poker.Diamonds: "♦",
	poker.Clubs:    "♣",
}

// Printer writes styled output. The colour profile is decided once, when the
// printer is created.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	header   lipgloss.Style
	hand     lipgloss.Style
	red      lipgloss.Style
	category lipgloss.Style
	winner   lipgloss.Style
	failure  lipgloss.Style
}

// NewPrinter creates a printer for w. mode is "auto", "always" or "never";
// auto asks termenv whether w is a colour terminal.
func NewPrinter(w io.Writer, mode string) *Printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:        w,
		renderer: r,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		red:      r.NewStyle().Foreground(lipgloss.Color("9")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		winner:   r.NewStyle().Foreground(lipgloss.Color("10")),
		failure:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Color reports whether output carries ANSI styling.
func (p *Printer) Color() bool {
	return p.renderer.ColorProfile() != termenv.Ascii
}

// Card renders one card with a suit glyph, hearts and diamonds in red.
func (p *Printer) Card(c poker.Card) string {
	s := string(c.RankChar()) + suitGlyphs[c.Suit()]
	if c.Suit() == poker.Hearts || c.Suit() == poker.Diamonds {
		return p.red.Render(s)
	}
	return s
}

// Cards renders cards in brackets, e.g. "[ A♠ , K❤ ]".
func (p *Printer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return "[ " + strings.Join(parts, " , ") + " ]"
}

// Evaluation prints a single hand's rank against a board.
func (p *Printer) Evaluation(board, hand []poker.Card, hr poker.HandRank) {
	if len(board) > 0 {
		fmt.Fprintf(p.w, "%s %s\n", p.header.Render("board"), p.Cards(board))
	}
	fmt.Fprintf(p.w, "%s %s\n", p.header.Render("hand "), p.Cards(hand))
	fmt.Fprintf(p.w, "rank %d (%s), percentile %.4f\n",
		hr, p.category.Render(hr.String()), poker.Percentile(hr))
}

// Results prints a table of results with the winners marked.
func (p *Printer) Results(board []poker.Card, results []poker.Result, winners []int) {
	if len(board) > 0 {
		fmt.Fprintf(p.w, "%s %s\n", p.header.Render("board"), p.Cards(board))
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		p.header.Render("#"),
		p.header.Render("hand"),
		p.header.Render("rank"),
		p.header.Render("class"),
		p.header.Render("percentile"))
	for i, r := range results {
		mark := ""
		if slices.Contains(winners, i) {
			mark = p.winner.Render("*")
		}
		fmt.Fprintf(tw, "%d%s\t%s\t%d\t%s\t%.4f\n",
			i+1, mark, p.hand.Render(poker.FormatCards(r.Hand)), r.Rank,
			p.category.Render(r.Category.String()), r.Percentile())
	}
	tw.Flush()

	fmt.Fprintln(p.w, p.winnerLine(results, winners))
}

func (p *Printer) winnerLine(results []poker.Result, winners []int) string {
	if len(winners) == 0 {
		return "no hands"
	}
	if len(winners) == 1 {
		w := winners[0]
		return p.winner.Render(fmt.Sprintf("Hand %d wins with %s", w+1, results[w].Category))
	}
	ids := make([]string, len(winners))
	for i, w := range winners {
		ids[i] = fmt.Sprint(w + 1)
	}
	return p.winner.Render(fmt.Sprintf("Hands %s tie with %s",
		strings.Join(ids, ", "), results[winners[0]].Category))
}

// Streets prints a hand summary street by street.
func (p *Printer) Streets(streets []poker.Street) {
	for i, s := range streets {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		fmt.Fprintf(p.w, "%s %s\n", p.header.Render(strings.ToUpper(s.Name)), p.Cards(s.Board))
		for j, r := range s.Results {
			fmt.Fprintf(p.w, "Hand %d %s: %s (%d)\n",
				j+1, p.Cards(r.Hand), p.category.Render(r.Category.String()), r.Rank)
		}
		fmt.Fprintln(p.w, p.winnerLine(s.Results, s.Winners))
	}
}

// VerifyReport prints the per-category tally of a verification run next to
// the expected counts.
func (p *Printer) VerifyReport(report *verify.Report, checkErr error) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t\n",
		p.header.Render("class"), p.header.Render("hands"), p.header.Render("expected"))
	for _, c := range poker.Categories {
		fmt.Fprintf(tw, "%s\t%d\t%d\t\n", p.category.Render(c.String()), report.Counts[c], verify.Expected[c])
	}
	tw.Flush()

	fmt.Fprintf(p.w, "%d hands, %d distinct ranks in %v\n",
		report.Hands, report.DistinctRanks, report.Elapsed.Truncate(time.Millisecond))
	if checkErr != nil {
		fmt.Fprintln(p.w, p.failure.Render("FAIL: "+checkErr.Error()))
		return
	}
	fmt.Fprintln(p.w, p.winner.Render("OK"))
}
