package state

import "slices"

// Topology is the symmetric weighted link relation between routers. It is
// owned by the simulation driver; the convergence engine only reads it and
// must never observe a mutation mid-round.
type Topology struct {
	edges map[NodeId]map[NodeId]Metric
}

func NewTopology() *Topology {
	return &Topology{
		edges: make(map[NodeId]map[NodeId]Metric),
	}
}

// SetEdge installs or replaces the undirected link a<->b. Self-loops are
// never represented.
func (t *Topology) SetEdge(a, b NodeId, cost Metric) {
	if a == b {
		return
	}
	t.install(a, b, cost)
	t.install(b, a, cost)
}

func (t *Topology) install(from, to NodeId, cost Metric) {
	adj, ok := t.edges[from]
	if !ok {
		adj = make(map[NodeId]Metric)
		t.edges[from] = adj
	}
	adj[to] = cost
}

// RemoveEdge deletes both directions of a<->b. Removing an absent link is a
// no-op, not an error.
func (t *Topology) RemoveEdge(a, b NodeId) {
	delete(t.edges[a], b)
	delete(t.edges[b], a)
}

// Cost returns the direct link cost between a and b, if a link exists.
func (t *Topology) Cost(a, b NodeId) (Metric, bool) {
	c, ok := t.edges[a][b]
	return c, ok
}

// Neighbours returns the direct neighbours of n in lexicographic order.
// Route computation scans candidates in this order, so it also fixes how
// equal-cost ties resolve.
func (t *Topology) Neighbours(n NodeId) []NodeId {
	adj := t.edges[n]
	out := make([]NodeId, 0, len(adj))
	for m := range adj {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// EdgeCount returns the number of undirected links.
func (t *Topology) EdgeCount() int {
	total := 0
	for _, adj := range t.edges {
		total += len(adj)
	}
	return total / 2
}

// Apply executes one queued update against the topology.
func (t *Topology) Apply(u Update) {
	if u.Cost == LinkDown {
		t.RemoveEdge(u.A, u.B)
		return
	}
	t.SetEdge(u.A, u.B, Metric(u.Cost))
}
