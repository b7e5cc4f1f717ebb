package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"visualchess/src/base"
	"visualchess/src/engine"

	"golang.org/x/term"
)

type CLIProcessing struct {
	eng engine.Engine
	in  *os.File
	out io.Writer
}

func NewCLI(eng engine.Engine) *CLIProcessing {
	return &CLIProcessing{eng: eng, in: os.Stdin, out: os.Stdout}
}

// line processing
// - enter a UCI move (e2e4, e7e8q)
// - 'fen' prints the position
// - 'new' starts over
// - 'q' to exit
// - redraw board after every accepted move
func (c *CLIProcessing) RunLineMode() error {
	interactive := term.IsTerminal(int(c.in.Fd()))

	PrintBoard(c.out, c.eng)
	c.printStatus()
	if interactive {
		fmt.Fprint(c.out, "Type a UCI move (e2e4, e7e8q), 'fen', 'new' or 'q' to quit.\n")
	}

	scanner := bufio.NewScanner(c.in)
	for {
		if interactive {
			fmt.Fprint(c.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		switch s {
		case "q", "Q", "quit":
			return nil
		case "fen":
			fmt.Fprintln(c.out, c.eng.FEN())
			continue
		case "new":
			c.eng.Reset()
			PrintBoard(c.out, c.eng)
			c.printStatus()
			continue
		}

		from, to, promo, err := parseUCIMove(s)
		if err != nil {
			fmt.Fprintf(c.out, "bad move %q: %v\n", s, err)
			continue
		}
		if !c.eng.TryCommit(from, to, promo) {
			fmt.Fprintf(c.out, "illegal move %q\n", s)
			continue
		}
		PrintBoard(c.out, c.eng)
		c.printStatus()
		if st := c.eng.Status(); st != engine.Ongoing {
			return nil
		}
	}
}

func (c *CLIProcessing) printStatus() {
	fmt.Fprintf(c.out, "to play: %v, status: %v\n", c.eng.SideToMove(), c.eng.Status())
}

func parseUCIMove(s string) (from, to base.Square, promo base.Kind, err error) {
	if len(s) != 4 && len(s) != 5 {
		return base.NoSquare, base.NoSquare, base.NoKind, fmt.Errorf("want e2e4 or e7e8q")
	}
	from, err = base.SquareFromAlgebraic(s[0:2])
	if err != nil {
		return base.NoSquare, base.NoSquare, base.NoKind, err
	}
	to, err = base.SquareFromAlgebraic(s[2:4])
	if err != nil {
		return base.NoSquare, base.NoSquare, base.NoKind, err
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = base.Queen
		case 'r':
			promo = base.Rook
		case 'b':
			promo = base.Bishop
		case 'n':
			promo = base.Knight
		default:
			return base.NoSquare, base.NoSquare, base.NoKind, fmt.Errorf("unknown promotion %q", s[4])
		}
	}
	return from, to, promo, nil
}
