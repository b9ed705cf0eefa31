package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
)

// ErrInputClosed is returned by every prompt once the input is exhausted.
var ErrInputClosed = errors.New("input closed")

// Unbounded limits for IntInput.
const (
	NoMin = math.MinInt
	NoMax = math.MaxInt
)

// Prompter asks questions on w and reads the answers line by line from r.
// Reads happen on a background goroutine so a blocked read can be abandoned
// when the prompter's context is cancelled.
type Prompter struct {
	r   *bufio.Reader
	w   io.Writer
	ctx context.Context

	start    sync.Once
	requests chan struct{}
	results  chan readResult
	pending  bool
}

type readResult struct {
	line string
	err  error
}

// NewPrompter creates a Prompter over r and w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		r:        bufio.NewReader(r),
		w:        w,
		ctx:      context.Background(),
		requests: make(chan struct{}, 1),
		results:  make(chan readResult, 1),
	}
}

// WithContext makes every prompt return ctx.Err() once ctx is done, even
// while waiting for input.
func (p *Prompter) WithContext(ctx context.Context) *Prompter {
	p.ctx = ctx
	return p
}

// readLoop reads one line per request. At most one request is outstanding.
func (p *Prompter) readLoop() {
	for range p.requests {
		line, err := p.r.ReadString('\n')
		p.results <- readResult{line: line, err: err}
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	if err := p.ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.w, prompt)

	p.start.Do(func() { go p.readLoop() })
	if !p.pending {
		p.requests <- struct{}{}
		p.pending = true
	}

	var res readResult
	select {
	case <-p.ctx.Done():
		return "", p.ctx.Err()
	case res = <-p.results:
		p.pending = false
	}

	if res.err != nil {
		if errors.Is(res.err, io.EOF) && res.line != "" {
			return strings.TrimSpace(res.line), nil
		}
		if errors.Is(res.err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", res.err
	}
	return strings.TrimSpace(res.line), nil
}

// Input reads a line. Required inputs are asked again until non-empty.
func (p *Prompter) Input(prompt string, required bool) (string, error) {
	for {
		value, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if value != "" || !required {
			return value, nil
		}
		fmt.Fprintln(p.w, "This field is required.")
	}
}

// IntInput reads an integer in [min, max], asking again on invalid input.
func (p *Prompter) IntInput(prompt string, min, max int) (int, error) {
	for {
		value, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if v, ok := p.checkInt(value, min, max); ok {
			return v, nil
		}
	}
}

// OptionalIntInput is IntInput where an empty answer returns nil.
func (p *Prompter) OptionalIntInput(prompt string, min, max int) (*int, error) {
	for {
		value, err := p.readLine(prompt)
		if err != nil {
			return nil, err
		}
		if value == "" {
			return nil, nil
		}
		if v, ok := p.checkInt(value, min, max); ok {
			return &v, nil
		}
	}
}

func (p *Prompter) checkInt(value string, min, max int) (int, bool) {
	v, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintln(p.w, "Please enter a valid number.")
		return 0, false
	}
	if v >= min && v <= max {
		return v, true
	}
	switch {
	case min != NoMin && max != NoMax:
		fmt.Fprintf(p.w, "Please enter a value between %d and %d.\n", min, max)
	case min != NoMin:
		fmt.Fprintf(p.w, "Please enter a value greater than or equal to %d.\n", min)
	default:
		fmt.Fprintf(p.w, "Please enter a value less than or equal to %d.\n", max)
	}
	return 0, false
}

// BoolInput asks a y/n question.
func (p *Prompter) BoolInput(prompt string) (bool, error) {
	for {
		value, err := p.readLine(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.w, "Please enter 'y' or 'n'.")
	}
}

// Select lists items numbered from 1 and returns the chosen index, or -1
// when the user cancels with 0 or there is nothing to choose from.
func (p *Prompter) Select(prompt string, items []string) (int, error) {
	if len(items) == 0 {
		fmt.Fprintln(p.w, "No items available.")
		return -1, nil
	}

	fmt.Fprintf(p.w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(p.w, "%d. %s\n", i+1, item)
	}

	for {
		value, err := p.readLine("\nEnter your choice (0 to cancel): ")
		if err != nil {
			return -1, err
		}
		choice, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(p.w, "Please enter a valid number.")
			continue
		}
		if choice == 0 {
			return -1, nil
		}
		if choice >= 1 && choice <= len(items) {
			return choice - 1, nil
		}
		fmt.Fprintf(p.w, "Please enter a number between 1 and %d.\n", len(items))
	}
}
