// Package input provides operator input adapters.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hostprep/hostprep/internal/ports"
)

// StdinReader reads key material from an input stream, one line per prompt.
type StdinReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinReader creates a reader backed by os.Stdin and os.Stdout.
func NewStdinReader() *StdinReader {
	return &StdinReader{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// NewReader creates a reader with explicit streams, for testing.
func NewReader(in io.Reader, out io.Writer) *StdinReader {
	return &StdinReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadKey writes the prompt and returns the next input line without its
// trailing newline.
func (r *StdinReader) ReadKey(prompt string) (string, error) {
	if prompt != "" {
		_, _ = fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ensure StdinReader implements ports.KeyReader.
var _ ports.KeyReader = (*StdinReader)(nil)
