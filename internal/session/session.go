// SPDX-License-Identifier: MIT

// Package session is the request API behind the dsalab CLI. A Session owns
// one instance of every structure, built from config, and executes
// word-split commands against them, returning the rendered output.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/dsalab/avl"
	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/hashtable"
	"github.com/katalvlaran/dsalab/internal/config"
	"github.com/katalvlaran/dsalab/list"
	"github.com/katalvlaran/dsalab/matrix"
	"github.com/katalvlaran/dsalab/queue"
	"github.com/katalvlaran/dsalab/record"
	"github.com/katalvlaran/dsalab/sorting"
	"github.com/katalvlaran/dsalab/stack"
)

var (
	// ErrUnknownCommand is returned for a command word Exec does not know.
	ErrUnknownCommand = errors.New("session: unknown command")

	// ErrUsage is returned when a known command gets bad arguments.
	ErrUsage = errors.New("session: usage")
)

// Session holds the live structures. It is not safe for concurrent use.
type Session struct {
	cfg    *config.Config
	log    *slog.Logger
	styles styles

	graph *core.Graph

	records *list.List[record.Record]
	byID    *hashtable.Table[int, record.Record]
	undo    stack.Stack[int]
	tree    *avl.Map[int, record.Record]
	order   avl.Order
	sortAlg sorting.Algorithm

	ring *queue.Ring[string]
	pq   queue.Priority[string]
	grid *matrix.Grid[float64]
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithRenderer sets the lipgloss renderer used for headings and markers.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(s *Session) { s.styles = newStyles(r) }
}

// New builds a Session from cfg, which must be valid.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg,
		log:    slog.Default(),
		styles: newStyles(lipgloss.DefaultRenderer()),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Validate has checked both names.
	s.order, _ = avl.ParseOrder(cfg.AVL.Order)
	s.sortAlg, _ = sorting.ByName(cfg.Sort.Algorithm)

	if err := s.Reset(); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset discards every structure and rebuilds it empty from the config.
func (s *Session) Reset() error {
	s.graph = core.NewGraph(
		core.WithDirected(s.cfg.Graph.Directed),
		core.WithMaxNodes(s.cfg.Graph.MaxNodes),
	)

	var hopts []hashtable.Option
	if s.cfg.HashTable.MaxLoadFactor > 0 {
		hopts = append(hopts, hashtable.WithMaxLoadFactor(s.cfg.HashTable.MaxLoadFactor))
	}
	if s.cfg.HashTable.Murmur3 {
		hopts = append(hopts, hashtable.WithHasher(hashtable.Murmur3))
	}
	byID, err := hashtable.New[int, record.Record](s.cfg.HashTable.Buckets, hopts...)
	if err != nil {
		return err
	}
	ring, err := queue.NewRing[string](s.cfg.Queue.Capacity)
	if err != nil {
		return err
	}
	grid, err := matrix.NewGrid[float64](s.cfg.Grid.Rows, s.cfg.Grid.Cols)
	if err != nil {
		return err
	}

	s.records = list.New[record.Record]()
	s.byID = byID
	s.undo = stack.Stack[int]{}
	s.tree = avl.New[int, record.Record]()
	s.ring = ring
	s.pq = queue.Priority[string]{}
	s.grid = grid

	return nil
}

// Graph exposes the session graph for read-only inspection.
func (s *Session) Graph() *core.Graph { return s.graph }

type handler func(s *Session, args []string) (string, error)

type command struct {
	usage []string
	run   handler
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"node":     {[]string{"node add [COUNT]"}, (*Session).cmdNode},
		"edge":     {[]string{"edge add U V W [--directed|--undirected]"}, (*Session).cmdEdge},
		"graph": {[]string{
			"graph list|matrix|stats",
			"graph gen path|cycle|star|wheel|complete N | grid R C | random N P [--seed S] [--weights LO HI]",
		}, (*Session).cmdGraph},
		"dijkstra": {[]string{"dijkstra S [T]"}, (*Session).cmdDijkstra},
		"floyd":    {[]string{"floyd"}, (*Session).cmdFloyd},
		"topo":     {[]string{"topo [kahn|dfs]"}, (*Session).cmdTopo},
		"mst":      {[]string{"mst [kruskal|prim] [--forest]"}, (*Session).cmdMST},
		"bfs":      {[]string{"bfs S"}, (*Session).cmdBFS},
		"dfs":      {[]string{"dfs S"}, (*Session).cmdDFS},
		"avl": {[]string{
			"avl insert ID NAME [DETAIL]",
			"avl show [inorder|preorder|postorder]",
			"avl get ID",
			"avl delete ID",
		}, (*Session).cmdAVL},
		"record": {[]string{
			"record add ID NAME METRIC [DETAIL]",
			"record find ID",
			"record delete ID",
			"record search linear|binary ID",
			"record sort [ALGO [id|metric]]",
			"record list",
		}, (*Session).cmdRecord},
		"undo":    {[]string{"undo"}, (*Session).cmdUndo},
		"queue":   {[]string{"queue push NAME|pop|rotate|list"}, (*Session).cmdQueue},
		"pq":      {[]string{"pq push PRIO NAME|pop"}, (*Session).cmdPQ},
		"grid":    {[]string{"grid set R C V|get R C|del R C|rows|cols|sparse"}, (*Session).cmdGrid},
		"postfix": {[]string{"postfix EXPR"}, (*Session).cmdPostfix},
		"tree":    {[]string{"tree EXPR"}, (*Session).cmdTree},
		"poly": {[]string{
			"poly eval X C:E...",
			"poly cmp X C:E,C:E... C:E,C:E...",
		}, (*Session).cmdPoly},
		"reset": {[]string{"reset"}, (*Session).cmdReset},
		"help":  {[]string{"help"}, (*Session).cmdHelp},
	}
}

// Exec runs one command. args[0] is the command word; the rest are its
// arguments. An empty args is a no-op.
func (s *Session) Exec(ctx context.Context, args []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, ok := commands[strings.ToLower(args[0])]
	if !ok {
		s.log.Warn("rejected request", "cmd", args[0], "reason", "unknown")
		return "", fmt.Errorf("%w: %q (try help)", ErrUnknownCommand, args[0])
	}

	out, err := cmd.run(s, args[1:])
	if err != nil {
		s.log.Warn("request failed", "cmd", args[0], "args", args[1:], "err", err)
		if errors.Is(err, ErrUsage) {
			return "", fmt.Errorf("%w\nusage: %s", err, strings.Join(cmd.usage, "\n       "))
		}
		return "", err
	}
	s.log.Debug("request", "cmd", args[0], "args", args[1:])

	return out, nil
}

func (s *Session) cmdHelp(_ []string) (string, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	var sb strings.Builder
	sb.WriteString(s.styles.heading.Render("commands"))
	sb.WriteByte('\n')
	for _, name := range names {
		for _, u := range commands[name].usage {
			sb.WriteString("  " + u + "\n")
		}
	}

	return sb.String(), nil
}

func (s *Session) cmdReset(args []string) (string, error) {
	if len(args) != 0 {
		return "", usagef("reset takes no arguments")
	}
	if err := s.Reset(); err != nil {
		return "", err
	}

	return "reset\n", nil
}

func usagef(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, a...)...)
}

// sub splits args into the subcommand word and its arguments.
func sub(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	return strings.ToLower(args[0]), args[1:]
}

func atoi(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, usagef("%s must be an integer, got %q", name, v)
	}

	return n, nil
}

func atoi64(name, v string) (int64, error) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, usagef("%s must be an integer, got %q", name, v)
	}

	return n, nil
}

func atof(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, usagef("%s must be a number, got %q", name, v)
	}

	return f, nil
}

func joinIDs(ids []core.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}

	return strings.Join(parts, " ")
}
