package views

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"practice-cli/utils"
)

// Console is the line-oriented terminal every program talks through.
// Diagnostics share the output stream with regular messages.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole wraps in and out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Println writes the operands followed by a newline.
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output without appending a newline.
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// Lines writes each line on its own.
func (c *Console) Lines(lines ...string) {
	for _, l := range lines {
		c.Println(l)
	}
}

// ReadLine reads one line and strips a single trailing "\n" (and a "\r"
// before it). Other whitespace is preserved.
//
// A final line without a newline is returned as-is. Reaching end of input
// with nothing read yields utils.ErrEndOfInput; any other failure is wrapped
// in a *utils.ReadError.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", &utils.ReadError{Err: err}
		}
		if line == "" {
			return "", utils.ErrEndOfInput
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Prompt prints each line of question and reads the answer.
func (c *Console) Prompt(question ...string) (string, error) {
	c.Lines(question...)
	return c.ReadLine()
}
