package core

import "github.com/routelab/dvsim/state"

// InitTables derives the round-0 table set straight from the one-hop
// topology: direct neighbours at their link cost with themselves as next
// hop, everything else unreachable. The same derivation resets the tables
// after the update batch is applied; converged state is never carried
// across the update boundary.
func InitTables(nodes []state.NodeId, topo *state.Topology) *state.Tables {
	t := state.NewTables()
	for _, n := range nodes {
		dist := make(state.DistanceTable, len(nodes)-1)
		routes := make(state.RoutingTable, len(nodes)-1)
		for _, d := range nodes {
			if d == n {
				continue
			}
			if c, ok := topo.Cost(n, d); ok {
				dist[d] = c
				routes[d] = d
			} else {
				dist[d] = state.INF
				routes[d] = ""
			}
		}
		t.Dist[n] = dist
		t.Routes[n] = routes
	}
	return t
}

// RunRound recomputes every router's tables from the previous round's
// snapshot and returns the number of changed cells. Every router reads prev
// and writes into the returned set, so no router ever observes a
// neighbour's same-round result.
//
// A cell counts as changed when its cost differs or its next hop differs;
// an equal-cost next-hop switch still propagates on later topology changes,
// so it must keep the round loop alive.
func RunRound(nodes []state.NodeId, topo *state.Topology, prev *state.Tables) (*state.Tables, int) {
	next := state.NewTables()
	changed := 0
	for _, n := range nodes {
		dist := make(state.DistanceTable, len(nodes)-1)
		routes := make(state.RoutingTable, len(nodes)-1)
		for _, d := range nodes {
			if d == n {
				continue
			}
			cost, nh := bestCandidate(n, d, topo, prev)
			dist[d] = cost
			routes[d] = nh
			if cost != prev.Dist[n][d] || nh != prev.Routes[n][d] {
				changed++
			}
		}
		next.Dist[n] = dist
		next.Routes[n] = routes
	}
	return next, changed
}

// Converge iterates RunRound until a full pass changes nothing, returning
// the converged tables and the number of rounds that changed any cell. The
// observe callback, when non-nil, sees every computed round including the
// one that detects convergence.
func Converge(nodes []state.NodeId, topo *state.Topology, t *state.Tables, observe func(t *state.Tables, changed int)) (*state.Tables, int) {
	rounds := 0
	for {
		next, changed := RunRound(nodes, topo, t)
		t = next
		if observe != nil {
			observe(t, changed)
		}
		if changed == 0 {
			return t, rounds
		}
		rounds++
	}
}

// bestCandidate scans the direct link first, then each neighbour in
// lexicographic order, keeping the first strict minimum. The scan order is
// load-bearing: equal-cost ties resolve to whichever candidate came first.
func bestCandidate(n, d state.NodeId, topo *state.Topology, prev *state.Tables) (state.Metric, state.NodeId) {
	best := state.INF
	var nh state.NodeId
	if c, ok := topo.Cost(n, d); ok {
		best = c
		nh = d
	}
	for _, m := range topo.Neighbours(n) {
		link, _ := topo.Cost(n, m)
		through, ok := prev.Dist[m][d]
		if !ok {
			// no entry for d at m; with a fixed node set this only
			// happens for m == d, which the direct link already covers
			continue
		}
		if c := state.AddMetric(link, through); c < best {
			best = c
			nh = m
		}
	}
	return best, nh
}
