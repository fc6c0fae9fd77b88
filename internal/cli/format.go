package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-xsos/pkg/ttt"
	"github.com/muesli/termenv"
)

const (
	intro        = "Welcome to Tic-tac-toe\nPlay as many games as you want\nPress Ctrl-C to exit at any time\n\n"
	rowSeparator = "---+---+---"
)

// Writes the user facing text, remembering the first write error
type Printer struct {
	w   io.Writer
	out *termenv.Output
	err error
}

func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{w: w, out: termenv.NewOutput(w, opts...)}
}

func (p *Printer) Print(a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprint(p.w, a...)
	}
}

func (p *Printer) Println(a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, a...)
	}
}

func (p *Printer) Printf(format string, a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, a...)
	}
}

func (p *Printer) Err() error {
	return p.err
}

// x in red, o in blue
func (p *Printer) mark(m ttt.Mark) string {
	color := "9"
	if m == ttt.O {
		color = "12"
	}
	return p.out.String(m.String()).Foreground(p.out.Color(color)).Bold().String()
}

func (p *Printer) cell(c ttt.Cell) string {
	if m, ok := c.Mark(); ok {
		return p.mark(m)
	}
	return " "
}

func (p *Printer) formatGrid(g ttt.Grid) string {
	rows := make([]string, 0, ttt.Size)
	row := make([]string, 0, ttt.Size)
	for c := range g.Cells() {
		row = append(row, p.cell(c))
		if len(row) == ttt.Size {
			rows = append(rows, " "+strings.Join(row, " | "))
			row = row[:0]
		}
	}
	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func (p *Printer) formatTurn(humans int, m ttt.Mark) string {
	if humans == 2 {
		return p.mark(m) + "'s turn"
	}
	return "Your turn (" + p.mark(m) + ")"
}
