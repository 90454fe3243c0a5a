package state

// NodeId uniquely identifies a router in the simulated network.
type NodeId string

// Metric is a link or path cost. INF marks an unreachable destination.
type Metric uint32

const (
	INF = Metric(^uint32(0))
	// INFM is the largest finite metric; sums saturate here instead of
	// wrapping into INF.
	INFM = INF - 1
)

func (m Metric) Finite() bool {
	return m != INF
}

func AddMetric(a, b Metric) Metric {
	if a == INF || b == INF {
		return INF
	}
	return Metric(min(uint64(INFM), uint64(a)+uint64(b)))
}

// LinkDown is the update cost that removes a link instead of setting it.
const LinkDown = -1

// Update is one queued topology change, applied as part of a batch after
// the first convergence.
type Update struct {
	A    NodeId
	B    NodeId
	Cost int
}
