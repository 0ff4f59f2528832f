package placeholder

import (
	"fmt"
	"io"
	"strings"
)

// LinePrompter reads one line of input per prompt. It blocks with no timeout.
//
// Input is read a byte at a time so nothing past the newline is consumed;
// the same reader is handed to spawned commands as their stdin.
type LinePrompter struct {
	in  io.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing labels to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, out: out}
}

// Prompt writes label and returns the next line, trimmed of surrounding whitespace.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	line, err := p.readLine()
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine returns everything up to and including the next '\n'.
func (p *LinePrompter) readLine() (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := p.in.Read(buf)
		if n == 1 {
			b.WriteByte(buf[0])
			if buf[0] == '\n' {
				return b.String(), nil
			}
		}
		if err != nil {
			return b.String(), err
		}
	}
}
