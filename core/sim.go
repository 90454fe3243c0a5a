package core

import (
	"log/slog"
	"slices"

	"github.com/routelab/dvsim/state"
)

// Reporter consumes the tables the simulation computes. The driver never
// formats anything itself; rendering is a consumer concern.
type Reporter interface {
	DistanceTables(step int, nodes []state.NodeId, t *state.Tables)
	RoutingTables(nodes []state.NodeId, t *state.Tables)
}

// Simulation drives the two convergence phases over a single topology. All
// state access happens on the calling goroutine; a round is one atomic pass
// over a frozen snapshot of the previous round.
type Simulation struct {
	Nodes    []state.NodeId
	Topo     *state.Topology
	Updates  []state.Update
	Log      *slog.Logger
	Reporter Reporter

	step   int
	tables *state.Tables
}

// Run converges on the initial topology, applies the queued update batch if
// there is one, re-initializes and re-converges, then reports the final
// routing tables. The step counter runs continuously across both phases.
//
// An empty node set or an initial topology without links is nothing to
// simulate: Run produces no output and no error.
func (s *Simulation) Run() {
	if len(s.Nodes) == 0 || s.Topo.EdgeCount() == 0 {
		s.Log.Info("empty scenario, nothing to simulate")
		return
	}
	// sort a private copy; the caller keeps its declaration order
	nodes := slices.Clone(s.Nodes)
	slices.Sort(nodes)
	s.Nodes = nodes

	s.tables = InitTables(s.Nodes, s.Topo)
	s.Reporter.DistanceTables(s.step, s.Nodes, s.tables)
	s.converge()

	if len(s.Updates) > 0 {
		s.Log.Debug("applying update batch", "updates", len(s.Updates))
		for _, u := range s.Updates {
			s.Topo.Apply(u)
		}
		s.tables = InitTables(s.Nodes, s.Topo)
		s.step++
		s.Reporter.DistanceTables(s.step, s.Nodes, s.tables)
		s.converge()
	}

	s.Reporter.RoutingTables(s.Nodes, s.tables)
}

// converge runs rounds until a full pass leaves every cell untouched. The
// round that detects convergence is still reported.
func (s *Simulation) converge() {
	tables, rounds := Converge(s.Nodes, s.Topo, s.tables, func(t *state.Tables, changed int) {
		s.step++
		s.Reporter.DistanceTables(s.step, s.Nodes, t)
		if state.DBG_log_rounds {
			s.Log.Debug("round complete", "t", s.step, "changed", changed)
		}
	})
	s.tables = tables
	s.Log.Debug("converged", "t", s.step, "rounds", rounds)
}
