// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dsalab/optional"
)

func (s *Session) cmdQueue(args []string) (string, error) {
	verb, rest := sub(args)
	switch verb {
	case "push":
		if len(rest) == 0 {
			return "", usagef("queue push NAME")
		}
		name := strings.Join(rest, " ")
		if err := s.ring.Enqueue(name); err != nil {
			return "", err
		}
		return fmt.Sprintf("queued %s (%d/%d)\n", name, s.ring.Len(), s.ring.Cap()), nil
	case "pop":
		v, err := s.ring.Dequeue()
		if err != nil {
			return "", err
		}
		return v + "\n", nil
	case "rotate":
		v, err := s.ring.Rotate()
		if err != nil {
			return "", err
		}
		return v + "\n", nil
	case "list", "":
		var sb strings.Builder
		for v := range s.ring.All() {
			sb.WriteString(v)
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	}

	return "", usagef("unknown subcommand %q", verb)
}

func (s *Session) cmdPQ(args []string) (string, error) {
	verb, rest := sub(args)
	switch verb {
	case "push":
		if len(rest) < 2 {
			return "", usagef("pq push PRIO NAME")
		}
		prio, err := atoi("PRIO", rest[0])
		if err != nil {
			return "", err
		}
		s.pq.Push(prio, strings.Join(rest[1:], " "))
		return fmt.Sprintf("%d pending\n", s.pq.Len()), nil
	case "pop":
		prio, v, ok := s.pq.Pop()
		if !ok {
			return s.styles.absent.Render("no tickets") + "\n", nil
		}
		return fmt.Sprintf("%d %s\n", prio, v), nil
	}

	return "", usagef("unknown subcommand %q", verb)
}

func (s *Session) cmdGrid(args []string) (string, error) {
	verb, rest := sub(args)
	coords := func(n int) (int, int, error) {
		if len(rest) != n {
			return 0, 0, usagef("grid %s needs %d arguments", verb, n)
		}
		r, err := atoi("R", rest[0])
		if err != nil {
			return 0, 0, err
		}
		c, err := atoi("C", rest[1])
		if err != nil {
			return 0, 0, err
		}
		return r, c, nil
	}

	switch verb {
	case "set":
		r, c, err := coords(3)
		if err != nil {
			return "", err
		}
		v, err := atof("V", rest[2])
		if err != nil {
			return "", err
		}
		if err := s.grid.Set(r, c, v); err != nil {
			return "", err
		}
		return "ok\n", nil
	case "get":
		r, c, err := coords(2)
		if err != nil {
			return "", err
		}
		v, ok, err := s.grid.Get(r, c)
		if err != nil {
			return "", err
		}
		return s.renderCell(optional.Of(v, ok)) + "\n", nil
	case "del":
		r, c, err := coords(2)
		if err != nil {
			return "", err
		}
		ok, err := s.grid.Delete(r, c)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ok) + "\n", nil
	case "rows", "cols":
		seq := s.grid.RowMajor()
		width := s.grid.Cols()
		if verb == "cols" {
			seq = s.grid.ColumnMajor()
			width = s.grid.Rows()
		}
		var sb strings.Builder
		i := 0
		for _, cell := range seq {
			if i > 0 {
				if i%width == 0 {
					sb.WriteByte('\n')
				} else {
					sb.WriteByte('\t')
				}
			}
			sb.WriteString(s.renderCell(cell))
			i++
		}
		sb.WriteByte('\n')
		return sb.String(), nil
	case "sparse":
		var sb strings.Builder
		for p, v := range s.grid.Present() {
			fmt.Fprintf(&sb, "(%d,%d) %g\n", p.Row, p.Col, v)
		}
		if sb.Len() == 0 {
			return s.styles.absent.Render("empty grid") + "\n", nil
		}
		return sb.String(), nil
	}

	return "", usagef("unknown subcommand %q", verb)
}

func (s *Session) renderCell(v optional.Value[float64]) string {
	if f, ok := v.Get(); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return s.styles.absent.Render("-")
}
