package render

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalDisplay prints a board as text blocks, two columns per cell
type TerminalDisplay struct {
	out io.Writer
}

func NewTerminalDisplay(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{out: out}
}

// Display renders the board to the terminal
func (d *TerminalDisplay) Display(b Board) error {
	w := bufio.NewWriter(d.out)
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if b.Get(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (d *TerminalDisplay) Clear() error {
	_, err := io.WriteString(d.out, ansiClearScreen)
	return err
}
