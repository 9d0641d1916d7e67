// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dsalab/bfs"
	"github.com/katalvlaran/dsalab/builder"
	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/dfs"
	"github.com/katalvlaran/dsalab/dijkstra"
	"github.com/katalvlaran/dsalab/matrix"
	"github.com/katalvlaran/dsalab/prim_kruskal"
	"github.com/katalvlaran/dsalab/toposort"
)

func (s *Session) cmdNode(args []string) (string, error) {
	verb, rest := sub(args)
	if verb != "add" || len(rest) > 1 {
		return "", usagef("node add [COUNT]")
	}
	count := 1
	if len(rest) == 1 {
		n, err := atoi("COUNT", rest[0])
		if err != nil {
			return "", err
		}
		if n <= 0 {
			return "", usagef("COUNT must be positive")
		}
		count = n
	}

	first := s.graph.NodeCount() + 1
	last, err := s.graph.AddNodes(count)
	if err != nil {
		return "", err
	}
	if count == 1 {
		return fmt.Sprintf("node %d\n", last), nil
	}

	return fmt.Sprintf("nodes %d..%d\n", first, last), nil
}

func (s *Session) cmdEdge(args []string) (string, error) {
	verb, rest := sub(args)
	if verb != "add" {
		return "", usagef("edge add U V W")
	}

	var opts []core.EdgeOption
	var pos []string
	for _, a := range rest {
		switch a {
		case "--directed":
			opts = append(opts, core.WithEdgeDirected(true))
		case "--undirected":
			opts = append(opts, core.WithEdgeDirected(false))
		default:
			pos = append(pos, a)
		}
	}
	if len(pos) != 3 {
		return "", usagef("edge add needs U V W")
	}
	u, err := atoi("U", pos[0])
	if err != nil {
		return "", err
	}
	v, err := atoi("V", pos[1])
	if err != nil {
		return "", err
	}
	w, err := atoi64("W", pos[2])
	if err != nil {
		return "", err
	}
	if err := s.graph.AddEdge(core.NodeID(u), core.NodeID(v), w, opts...); err != nil {
		return "", err
	}

	return fmt.Sprintf("edge %d-%d (%d)\n", u, v, w), nil
}

func (s *Session) cmdGraph(args []string) (string, error) {
	verb, rest := sub(args)
	if verb == "gen" {
		return s.graphGen(rest)
	}
	if len(rest) != 0 {
		return "", usagef("graph list|matrix|stats")
	}

	switch verb {
	case "list", "":
		var sb strings.Builder
		for _, u := range s.graph.Nodes() {
			arcs, err := s.graph.Neighbors(u)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%d:", u)
			for _, a := range arcs {
				sep := " -"
				if a.Directed {
					sep = " ->"
				}
				fmt.Fprintf(&sb, "%s%d(%d)", sep, a.To, a.Weight)
			}
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	case "matrix":
		d, err := matrix.FromGraph(s.graph)
		if err != nil {
			return "", err
		}
		return s.renderDense(d), nil
	case "stats":
		st := s.graph.Stats()
		return fmt.Sprintf("nodes %d, edges %d (directed %d), arcs %d, self-loops %d\n",
			st.NodeCount, st.EdgeCount, st.DirectedEdgeCount, st.ArcCount, st.SelfLoopCount), nil
	}

	return "", usagef("graph list|matrix|stats")
}

// graphGen appends a generated topology: graph gen KIND ARGS... [--seed N] [--weights LO HI].
func (s *Session) graphGen(args []string) (string, error) {
	var (
		pos   []string
		bopts []builder.BuilderOption
	)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--seed":
			if i+1 >= len(args) {
				return "", usagef("--seed needs a value")
			}
			seed, err := atoi64("seed", args[i+1])
			if err != nil {
				return "", err
			}
			bopts = append(bopts, builder.WithSeed(seed))
			i++
		case "--weights":
			if i+2 >= len(args) {
				return "", usagef("--weights needs LO HI")
			}
			lo, err := atoi64("LO", args[i+1])
			if err != nil {
				return "", err
			}
			hi, err := atoi64("HI", args[i+2])
			if err != nil {
				return "", err
			}
			if lo > hi {
				return "", usagef("--weights needs LO <= HI")
			}
			bopts = append(bopts, builder.WithWeightRange(lo, hi))
			i += 2
		default:
			pos = append(pos, args[i])
		}
	}
	if len(pos) == 0 {
		return "", usagef("graph gen KIND ARGS...")
	}

	con, err := builder.ByName(pos[0], pos[1:])
	if err != nil {
		return "", usagef("%v", err)
	}
	before := s.graph.NodeCount()
	if err := builder.Apply(s.graph, bopts, con); err != nil {
		return "", err
	}

	return fmt.Sprintf("nodes %d..%d, %d edges total\n", before+1, s.graph.NodeCount(), s.graph.EdgeCount()), nil
}

// renderDense prints one row per line with absent cells marked.
func (s *Session) renderDense(d *matrix.Dense) string {
	var sb strings.Builder
	for i := 0; i < d.Rows(); i++ {
		row, _ := d.Row(i)
		for j, c := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			if c.OK {
				fmt.Fprintf(&sb, "%d", c.Value)
			} else {
				sb.WriteString(s.styles.absent.Render("-"))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (s *Session) cmdDijkstra(args []string) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", usagef("dijkstra S [T]")
	}
	src, err := atoi("S", args[0])
	if err != nil {
		return "", err
	}
	res, err := dijkstra.Dijkstra(s.graph, core.NodeID(src), dijkstra.WithReturnPath())
	if err != nil {
		return "", err
	}

	if len(args) == 2 {
		dst, err := atoi("T", args[1])
		if err != nil {
			return "", err
		}
		path, err := res.PathTo(core.NodeID(dst))
		if err != nil {
			return "", err
		}
		d, _ := res.Distance(core.NodeID(dst))
		return fmt.Sprintf("%s (distance %d)\n", joinIDs(path), d), nil
	}

	var sb strings.Builder
	sb.WriteString(s.styles.heading.Render(fmt.Sprintf("distances from %d", src)))
	sb.WriteByte('\n')
	for _, v := range s.graph.Nodes() {
		if d, ok := res.Distance(v); ok {
			fmt.Fprintf(&sb, "%d\t%d\n", v, d)
		} else {
			fmt.Fprintf(&sb, "%d\t%s\n", v, s.styles.absent.Render("unreachable"))
		}
	}

	return sb.String(), nil
}

func (s *Session) cmdFloyd(args []string) (string, error) {
	if len(args) != 0 {
		return "", usagef("floyd takes no arguments")
	}
	d, err := matrix.AllPairs(s.graph)
	if err != nil {
		return "", err
	}
	out := s.renderDense(d)
	if matrix.HasNegativeCycle(d) {
		out += s.styles.warn.Render("negative cycle present") + "\n"
	}

	return out, nil
}

func (s *Session) cmdTopo(args []string) (string, error) {
	method, rest := sub(args)
	if len(rest) != 0 {
		return "", usagef("topo [kahn|dfs]")
	}

	var (
		order []core.NodeID
		err   error
	)
	switch method {
	case "", "kahn":
		order, err = toposort.Kahn(s.graph)
	case "dfs":
		order, err = dfs.TopologicalSort(s.graph)
	default:
		return "", usagef("unknown method %q", method)
	}
	if err != nil {
		return "", err
	}

	return joinIDs(order) + "\n", nil
}

func (s *Session) cmdMST(args []string) (string, error) {
	opts := prim_kruskal.DefaultOptions()
	for _, a := range args {
		switch strings.ToLower(a) {
		case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
			opts.Method = strings.ToLower(a)
		case "--forest":
			opts.Forest = true
		default:
			return "", usagef("unknown argument %q", a)
		}
	}

	edges, total, err := prim_kruskal.Compute(s.graph, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s total %d\n", opts.Method, total)
	for _, e := range edges {
		fmt.Fprintf(&sb, "%d-%d (%d)\n", e.From, e.To, e.Weight)
	}

	return sb.String(), nil
}

func (s *Session) cmdBFS(args []string) (string, error) {
	if len(args) != 1 {
		return "", usagef("bfs S")
	}
	start, err := atoi("S", args[0])
	if err != nil {
		return "", err
	}
	res, err := bfs.BFS(s.graph, core.NodeID(start))
	if err != nil {
		return "", err
	}

	return joinIDs(res.Order) + "\n", nil
}

func (s *Session) cmdDFS(args []string) (string, error) {
	if len(args) != 1 {
		return "", usagef("dfs S")
	}
	start, err := atoi("S", args[0])
	if err != nil {
		return "", err
	}
	res, err := dfs.DFS(s.graph, core.NodeID(start))
	if err != nil {
		return "", err
	}

	return joinIDs(res.Preorder) + "\n", nil
}
