package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/routelab/dvsim/state"
)

// ParseScenario reads the line-oriented scenario format: node names up to
// START, initial links up to UPDATE, queued updates up to END. Blank lines
// are skipped. An initial link with cost -1 means "no link" and is not
// stored; in the update section -1 queues a link removal.
func ParseScenario(r io.Reader) ([]state.NodeId, *state.Topology, []state.Update, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	nodes := make([]state.NodeId, 0)
	declared := make(map[state.NodeId]bool)
	for {
		line, ok := next()
		if !ok {
			return nil, nil, nil, fmt.Errorf("unexpected end of input: missing START")
		}
		if line == "START" {
			break
		}
		id := state.NodeId(line)
		if declared[id] {
			return nil, nil, nil, fmt.Errorf("line %d: duplicate node name: %s", lineNo, id)
		}
		declared[id] = true
		nodes = append(nodes, id)
	}

	topo := state.NewTopology()
	for {
		line, ok := next()
		if !ok {
			return nil, nil, nil, fmt.Errorf("unexpected end of input: missing UPDATE")
		}
		if line == "UPDATE" {
			break
		}
		a, b, cost, err := parseLink(line, lineNo, declared)
		if err != nil {
			return nil, nil, nil, err
		}
		if cost == state.LinkDown {
			continue
		}
		topo.SetEdge(a, b, state.Metric(cost))
	}

	updates := make([]state.Update, 0)
	for {
		line, ok := next()
		if !ok {
			return nil, nil, nil, fmt.Errorf("unexpected end of input: missing END")
		}
		if line == "END" {
			break
		}
		a, b, cost, err := parseLink(line, lineNo, declared)
		if err != nil {
			return nil, nil, nil, err
		}
		updates = append(updates, state.Update{A: a, B: b, Cost: cost})
	}

	if err := sc.Err(); err != nil {
		return nil, nil, nil, err
	}
	return nodes, topo, updates, nil
}

func parseLink(line string, lineNo int, declared map[state.NodeId]bool) (state.NodeId, state.NodeId, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", "", 0, fmt.Errorf("line %d: expected SRC DEST COST, got %q", lineNo, line)
	}
	a, b := state.NodeId(fields[0]), state.NodeId(fields[1])
	if !declared[a] {
		return "", "", 0, fmt.Errorf("line %d: %s is not a declared node", lineNo, a)
	}
	if !declared[b] {
		return "", "", 0, fmt.Errorf("line %d: %s is not a declared node", lineNo, b)
	}
	cost, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", "", 0, fmt.Errorf("line %d: invalid cost %q", lineNo, fields[2])
	}
	if cost < 0 && cost != state.LinkDown {
		return "", "", 0, fmt.Errorf("line %d: invalid cost %d", lineNo, cost)
	}
	if int64(cost) > int64(state.INFM) {
		return "", "", 0, fmt.Errorf("line %d: cost %d exceeds maximum metric %d", lineNo, cost, uint64(state.INFM))
	}
	return a, b, cost, nil
}
