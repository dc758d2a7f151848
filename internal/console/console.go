// internal/console/console.go
//
// Line-oriented player I/O for the game.
// Responsibilities:
//   - Prompting for and reading single lines ("> ").
//   - Re-prompt loops: non-empty player name, yes/no confirmation.
//   - Presentation pauses through an injectable sleeper (no-op in tests).
//
// End of input is reported as ErrInputClosed so the game can stop cleanly.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// PromptText precedes every line of player input.
const PromptText = "> "

var (
	// ErrInputClosed is returned when the input stream ends.
	ErrInputClosed = errors.New("input closed")
	// ErrInvalidAnswer is returned by ParseAnswer for anything outside y/yes/n/no.
	ErrInvalidAnswer = errors.New("please answer yes or no")
)

// Console reads player input from an io.Reader and writes to an io.Writer.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	// Sleep implements Pause. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// New returns a Console over in and out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    bufio.NewScanner(in),
		out:   out,
		Sleep: time.Sleep,
	}
}

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes args followed by a newline.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Pause waits for d. Non-positive durations return immediately.
func (c *Console) Pause(d time.Duration) {
	if d > 0 && c.Sleep != nil {
		c.Sleep(d)
	}
}

// Prompt writes the prompt and returns the next input line.
func (c *Console) Prompt(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.Printf("%s", PromptText)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return c.in.Text(), nil
}

// ReadName prompts until a non-blank name is entered and returns it trimmed.
func (c *Console) ReadName(ctx context.Context) (string, error) {
	for {
		line, err := c.Prompt(ctx)
		if err != nil {
			return "", err
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
	}
}

// Confirm asks question until the answer is one of y/yes/n/no.
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		c.Println(question)
		line, err := c.Prompt(ctx)
		if err != nil {
			return false, err
		}
		yes, err := ParseAnswer(line)
		if err == nil {
			return yes, nil
		}
		c.Println(ErrInvalidAnswer.Error() + " (y/n).")
	}
}

// ParseAnswer maps y/yes/n/no (any case, surrounding space ignored) to a bool.
func ParseAnswer(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, ErrInvalidAnswer
}
