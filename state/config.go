package state

import (
	"fmt"
	"slices"
)

// LinkCfg is one undirected link in a YAML scenario.
type LinkCfg struct {
	A    NodeId
	B    NodeId
	Cost int
}

// ScenarioCfg is the YAML form of a simulation scenario. The line-oriented
// stdin format remains the canonical input; this form exists for scenario
// files kept under version control.
type ScenarioCfg struct {
	Nodes   []NodeId
	Links   []LinkCfg
	Updates []LinkCfg
}

func ScenarioValidator(cfg *ScenarioCfg) error {
	declared := make(map[NodeId]bool, len(cfg.Nodes))
	for _, n := range cfg.Nodes {
		if n == "" {
			return fmt.Errorf("node name must not be empty")
		}
		if declared[n] {
			return fmt.Errorf("duplicate node name: %s", n)
		}
		declared[n] = true
	}
	for _, l := range cfg.Links {
		if err := validateLink(l, declared); err != nil {
			return err
		}
	}
	for _, u := range cfg.Updates {
		if err := validateLink(u, declared); err != nil {
			return err
		}
	}
	return nil
}

func validateLink(l LinkCfg, declared map[NodeId]bool) error {
	if !declared[l.A] {
		return fmt.Errorf("%s is not a declared node", l.A)
	}
	if !declared[l.B] {
		return fmt.Errorf("%s is not a declared node", l.B)
	}
	if l.A == l.B {
		return fmt.Errorf("self link on %s", l.A)
	}
	if l.Cost < 0 && l.Cost != LinkDown {
		return fmt.Errorf("invalid cost %d on link %s %s", l.Cost, l.A, l.B)
	}
	if int64(l.Cost) > int64(INFM) {
		return fmt.Errorf("cost %d on link %s %s exceeds maximum metric %d", l.Cost, l.A, l.B, uint64(INFM))
	}
	return nil
}

// Scenario materializes the config into the driver's inputs. Initial links
// carrying the LinkDown cost mean "no link" and are skipped, matching the
// line format.
func (cfg *ScenarioCfg) Scenario() ([]NodeId, *Topology, []Update) {
	nodes := slices.Clone(cfg.Nodes)
	topo := NewTopology()
	for _, l := range cfg.Links {
		if l.Cost == LinkDown {
			continue
		}
		topo.SetEdge(l.A, l.B, Metric(l.Cost))
	}
	updates := make([]Update, 0, len(cfg.Updates))
	for _, u := range cfg.Updates {
		updates = append(updates, Update{A: u.A, B: u.B, Cost: u.Cost})
	}
	return nodes, topo, updates
}
