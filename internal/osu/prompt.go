package osu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Prompter asks the user for a directory path.
type Prompter interface {
	// PromptPath shows prompt and blocks until a line of input is read.
	PromptPath(ctx context.Context, prompt string) (string, error)
}

// LinePrompter reads one line per prompt from a reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter writing prompts to out and reading
// answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// PromptPath implements Prompter.
//
// The context is checked before reading only; a blocked read is not
// interrupted. Returns io.EOF once the input is exhausted.
func (p *LinePrompter) PromptPath(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// CleanPathInput trims whitespace and double quotes around a path typed or
// pasted by the user, e.g. `  "C:\Games\osu!"  `.
func CleanPathInput(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '"' || unicode.IsSpace(r)
	})
}
