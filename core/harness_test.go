package core

import (
	"io"
	"log/slog"

	"github.com/routelab/dvsim/state"
)

// TableRecorder captures everything the driver reports, in emission order.
// The driver swaps table pointers between rounds instead of mutating, so
// recorded snapshots stay valid.
type TableRecorder struct {
	Steps   []int
	Dist    []*state.Tables
	Routing *state.Tables
}

func (r *TableRecorder) DistanceTables(step int, nodes []state.NodeId, t *state.Tables) {
	r.Steps = append(r.Steps, step)
	r.Dist = append(r.Dist, t)
}

func (r *TableRecorder) RoutingTables(nodes []state.NodeId, t *state.Tables) {
	r.Routing = t
}

func (r *TableRecorder) Final() *state.Tables {
	return r.Dist[len(r.Dist)-1]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func lineTopology(costs ...state.Metric) ([]state.NodeId, *state.Topology) {
	nodes := make([]state.NodeId, len(costs)+1)
	for i := range nodes {
		nodes[i] = state.NodeId(string(rune('A' + i)))
	}
	topo := state.NewTopology()
	for i, c := range costs {
		topo.SetEdge(nodes[i], nodes[i+1], c)
	}
	return nodes, topo
}
