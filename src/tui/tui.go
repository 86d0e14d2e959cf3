package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type TUI struct {
	input  *bufio.Reader
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  bufio.NewReader(os.Stdin),
		output: os.Stderr,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewReader(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// Confirm asks a yes/no question until it gets an answer it understands. An
// empty answer means no. Running out of input is also a no, returned together
// with the read error.
func (t *TUI) Confirm(question string, a ...any) (bool, error) {
	for {
		fmt.Fprintf(t.output, question+" [y/N] ", a...)

		response, err := t.input.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || response == "") {
			slog.Debug("failed to read user input", "error", err)
			fmt.Fprintln(t.output)
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
	}
}
