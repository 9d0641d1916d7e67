// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dsalab/avl"
	"github.com/katalvlaran/dsalab/list"
	"github.com/katalvlaran/dsalab/record"
	"github.com/katalvlaran/dsalab/search"
	"github.com/katalvlaran/dsalab/sorting"
)

// ErrRecordNotFound is returned by record lookups that miss.
var ErrRecordNotFound = errors.New("session: record not found")

func (s *Session) cmdRecord(args []string) (string, error) {
	verb, rest := sub(args)
	switch verb {
	case "add":
		return s.recordAdd(rest)
	case "find":
		if len(rest) != 1 {
			return "", usagef("record find ID")
		}
		id, err := atoi("ID", rest[0])
		if err != nil {
			return "", err
		}
		r, ok := s.byID.Search(id)
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrRecordNotFound, id)
		}
		return r.String() + "\n", nil
	case "delete":
		if len(rest) != 1 {
			return "", usagef("record delete ID")
		}
		id, err := atoi("ID", rest[0])
		if err != nil {
			return "", err
		}
		if !s.deleteRecord(id) {
			return "", fmt.Errorf("%w: %d", ErrRecordNotFound, id)
		}
		return fmt.Sprintf("deleted record %d\n", id), nil
	case "search":
		return s.recordSearch(rest)
	case "sort":
		return s.recordSort(rest)
	case "list", "":
		return s.renderRecords(s.records.Values()), nil
	}

	return "", usagef("unknown subcommand %q", verb)
}

func (s *Session) recordAdd(args []string) (string, error) {
	if len(args) < 3 {
		return "", usagef("record add ID NAME METRIC [DETAIL]")
	}
	id, err := atoi("ID", args[0])
	if err != nil {
		return "", err
	}
	metric, err := atof("METRIC", args[2])
	if err != nil {
		return "", err
	}
	r := record.Record{ID: id, Name: args[1], Metric: metric, Detail: strings.Join(args[3:], " ")}

	s.records.PushBack(r)
	s.byID.Insert(r.ID, r)
	s.undo.Push(r.ID)

	return "added " + r.String() + "\n", nil
}

func (s *Session) recordSearch(args []string) (string, error) {
	if len(args) != 2 {
		return "", usagef("record search linear|binary ID")
	}
	id, err := atoi("ID", args[1])
	if err != nil {
		return "", err
	}

	recs := s.records.Values()
	var (
		i  int
		ok bool
	)
	switch strings.ToLower(args[0]) {
	case "linear":
		i, ok = search.Linear(recs, id, record.ByID)
	case "binary":
		sorting.Merge(recs, record.ByID)
		i, ok = search.Binary(recs, id, record.ByID)
	default:
		return "", usagef("unknown search %q", args[0])
	}
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrRecordNotFound, id)
	}

	return fmt.Sprintf("[%d] %s\n", i, recs[i]), nil
}

// recordSort reorders the record list in place.
func (s *Session) recordSort(args []string) (string, error) {
	if len(args) > 2 {
		return "", usagef("record sort [ALGO [id|metric]]")
	}
	alg := s.sortAlg
	if len(args) >= 1 {
		a, err := sorting.ByName(args[0])
		if err != nil {
			return "", usagef("%v", err)
		}
		alg = a
	}
	field := "id"
	if len(args) == 2 {
		field = strings.ToLower(args[1])
	}

	recs := s.records.Values()
	var err error
	switch field {
	case "id":
		err = sorting.Sort(alg, recs, record.ByID)
	case "metric":
		err = sorting.SortOrdered(alg, recs, record.ByMetric)
	default:
		return "", usagef("unknown field %q", field)
	}
	if err != nil {
		return "", err
	}

	s.records = list.New(recs...)

	return s.renderRecords(recs), nil
}

func (s *Session) renderRecords(recs []record.Record) string {
	if len(recs) == 0 {
		return s.styles.absent.Render("no records") + "\n"
	}
	var sb strings.Builder
	for _, r := range recs {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// deleteRecord drops the earliest record with id from the list and the index.
func (s *Session) deleteRecord(id int) bool {
	if !s.records.Remove(func(r record.Record) bool { return r.ID == id }) {
		return false
	}
	s.byID.Delete(id)

	return true
}

// cmdUndo removes the most recently added record that is still present.
// Ids already gone through record delete are skipped.
func (s *Session) cmdUndo(args []string) (string, error) {
	if len(args) != 0 {
		return "", usagef("undo takes no arguments")
	}
	for {
		id, ok := s.undo.Pop()
		if !ok {
			return "nothing to undo\n", nil
		}
		if s.deleteRecord(id) {
			return fmt.Sprintf("undid record %d\n", id), nil
		}
	}
}

func (s *Session) cmdAVL(args []string) (string, error) {
	verb, rest := sub(args)
	switch verb {
	case "insert":
		if len(rest) < 2 {
			return "", usagef("avl insert ID NAME [DETAIL]")
		}
		id, err := atoi("ID", rest[0])
		if err != nil {
			return "", err
		}
		r := record.Record{ID: id, Name: rest[1], Detail: strings.Join(rest[2:], " ")}
		if err := s.tree.Insert(id, r); err != nil {
			return "", err
		}
		return fmt.Sprintf("inserted %d (height %d)\n", id, s.tree.Height()), nil

	case "show":
		order := s.order
		if len(rest) > 1 {
			return "", usagef("avl show [inorder|preorder|postorder]")
		}
		if len(rest) == 1 {
			o, err := avl.ParseOrder(rest[0])
			if err != nil {
				return "", usagef("%v", err)
			}
			order = o
		}
		var sb strings.Builder
		for _, r := range s.tree.Traverse(order) {
			sb.WriteString(r.String())
			sb.WriteByte('\n')
		}
		if sb.Len() == 0 {
			return s.styles.absent.Render("empty tree") + "\n", nil
		}
		return sb.String(), nil

	case "get", "delete":
		if len(rest) != 1 {
			return "", usagef("avl %s ID", verb)
		}
		id, err := atoi("ID", rest[0])
		if err != nil {
			return "", err
		}
		if verb == "delete" {
			if err := s.tree.Delete(id); err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted %d\n", id), nil
		}
		r, ok := s.tree.Search(id)
		if !ok {
			return "", fmt.Errorf("%w: %d", avl.ErrKeyNotFound, id)
		}
		return r.String() + "\n", nil
	}

	return "", usagef("unknown subcommand %q", verb)
}
