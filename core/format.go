package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/routelab/dvsim/state"
)

// Formatter renders tables in the fixed historical layout: per-round
// distance tables for every router, and the final routing tables. Output is
// buffered; call Flush once the simulation is done.
type Formatter struct {
	w *bufio.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: bufio.NewWriter(w)}
}

// DistanceTables prints one table per router in lexicographic order. Rows
// and columns both list the other routers; by convention only the diagonal
// cell carries the real cost and every other cell prints INF.
func (f *Formatter) DistanceTables(step int, nodes []state.NodeId, t *state.Tables) {
	for _, n := range nodes {
		fmt.Fprintf(f.w, "\nDistance Table of router %s at t=%d:\n", n, step)
		others := otherNodes(nodes, n)
		cols := make([]string, 0, len(others))
		for _, d := range others {
			cols = append(cols, string(d))
		}
		fmt.Fprintf(f.w, "     %s\n", strings.Join(cols, "    "))
		for _, row := range others {
			cells := make([]string, 0, len(others))
			for _, col := range others {
				if row == col {
					cells = append(cells, renderMetric(t.Dist[n][row]))
				} else {
					cells = append(cells, "INF")
				}
			}
			fmt.Fprintf(f.w, "%s    %s\n", row, strings.Join(cells, "    "))
		}
	}
}

// RoutingTables prints DEST,NEXT_HOP,COST for every reachable destination;
// unreachable destinations are omitted entirely.
func (f *Formatter) RoutingTables(nodes []state.NodeId, t *state.Tables) {
	for _, n := range nodes {
		fmt.Fprintf(f.w, "\nRouting Table of router %s:\n", n)
		for _, d := range otherNodes(nodes, n) {
			cost := t.Dist[n][d]
			nh := t.Routes[n][d]
			if !cost.Finite() || nh == "" {
				continue
			}
			fmt.Fprintf(f.w, "%s,%s,%d\n", d, nh, uint64(cost))
		}
	}
}

func (f *Formatter) Flush() error {
	return f.w.Flush()
}

func renderMetric(m state.Metric) string {
	if !m.Finite() {
		return "INF"
	}
	return fmt.Sprintf("%d", uint64(m))
}

func otherNodes(nodes []state.NodeId, n state.NodeId) []state.NodeId {
	out := make([]state.NodeId, 0, len(nodes)-1)
	for _, d := range nodes {
		if d != n {
			out = append(out, d)
		}
	}
	return out
}
