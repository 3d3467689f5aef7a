package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter lee una línea por pregunta y re-pregunta si el valor no parsea.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) askInt(label string) (int, error) {
	return ask(p, label, "a whole number", strconv.Atoi)
}

func (p *prompter) askFloat(label string) (float64, error) {
	return ask(p, label, "a non-negative number", func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, errors.New("negative")
		}
		return v, nil
	})
}

func (p *prompter) askBool(label string) (bool, error) {
	return ask(p, label, "true or false", strconv.ParseBool)
}

func ask[T any](p *prompter, label, want string, parse func(string) (T, error)) (T, error) {
	for {
		raw, err := p.line(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "Please enter %s.\n", want)
	}
}
