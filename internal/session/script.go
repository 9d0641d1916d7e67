// SPDX-License-Identifier: MIT

package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Split breaks a command line into words with shell quoting rules, so
// `record add 1 "Ann Lee" 3.5` yields five words.
func Split(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return args, nil
}

// ScriptOptions controls Run.
type ScriptOptions struct {
	// Prompt is written to w before each line is read. Empty for scripts.
	Prompt string
	// KeepGoing reports errors to w and continues instead of stopping.
	KeepGoing bool
}

// Run executes r line by line, writing each result to w. Blank lines and
// lines starting with '#' are skipped. "quit" or "exit" ends the run.
// Cancellation of ctx is checked between lines.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer, opts ScriptOptions) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for {
		if opts.Prompt != "" {
			fmt.Fprint(w, opts.Prompt)
		}
		if !sc.Scan() {
			break
		}
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		args, err := Split(line)
		if err == nil {
			var out string
			out, err = s.Exec(ctx, args)
			fmt.Fprint(w, out)
		}
		if err != nil {
			if !opts.KeepGoing {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			fmt.Fprintf(w, "%s %v\n", s.styles.warn.Render("error:"), err)
		}
	}

	return sc.Err()
}
