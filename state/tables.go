package state

// DistanceTable maps destination to the best known cost from one router. A
// router never carries an entry for itself.
type DistanceTable map[NodeId]Metric

// RoutingTable maps destination to the next hop on the best known path. A
// destination with no known path maps to the empty NodeId.
type RoutingTable map[NodeId]NodeId

// Tables is the complete table set for one round, covering every router.
// Rounds never mutate a Tables in place; each round builds a fresh set from
// the previous one, which is what keeps the iteration synchronous.
type Tables struct {
	Dist   map[NodeId]DistanceTable
	Routes map[NodeId]RoutingTable
}

func NewTables() *Tables {
	return &Tables{
		Dist:   make(map[NodeId]DistanceTable),
		Routes: make(map[NodeId]RoutingTable),
	}
}
