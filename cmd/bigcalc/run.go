package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/internal/rpn"
)

type config struct {
	maxLines int
	prompt   bool
}

var errColor = color.New(color.FgRed, color.Bold)

// run evaluates up to cfg.maxLines lines from in. A failing line never stops
// the loop: division by zero prints the literal "division by zero", any other
// fault prints "error: ..." in its place.
func run(in io.Reader, out, errOut io.Writer, cfg config) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	w := bufio.NewWriter(out)
	defer w.Flush()

	for n := 0; cfg.maxLines <= 0 || n < cfg.maxLines; n++ {
		if cfg.prompt {
			w.Flush()
			fmt.Fprint(errOut, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := rpn.Eval(line)
		switch {
		case errors.Is(err, bignum.ErrDivisionByZero):
			fmt.Fprintln(w, "division by zero")
		case err != nil:
			errColor.Fprintf(w, "error: %v\n", err)
		default:
			fmt.Fprintln(w, result)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("bigcalc: reading input: %w", err)
	}
	return nil
}
