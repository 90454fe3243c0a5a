package integration

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/routelab/dvsim/core"
	"github.com/routelab/dvsim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runScenario(t *testing.T, input string) string {
	t.Helper()
	nodes, topo, updates, err := core.ParseScenario(strings.NewReader(input))
	require.NoError(t, err)

	var sb strings.Builder
	formatter := core.NewFormatter(&sb)
	sim := &core.Simulation{
		Nodes:    nodes,
		Topo:     topo,
		Updates:  updates,
		Log:      discardLogger(),
		Reporter: formatter,
	}
	sim.Run()
	require.NoError(t, formatter.Flush())
	return sb.String()
}

func TestFullRunWithLinkAddition(t *testing.T) {
	defer goleak.VerifyNone(t)
	input := `A
B
C
START
A B 1
B C 1
UPDATE
A C 1
END
`
	want := `
Distance Table of router A at t=0:
     B    C
B    1    INF
C    INF    INF

Distance Table of router B at t=0:
     A    C
A    1    INF
C    INF    1

Distance Table of router C at t=0:
     A    B
A    INF    INF
B    INF    1

Distance Table of router A at t=1:
     B    C
B    1    INF
C    INF    2

Distance Table of router B at t=1:
     A    C
A    1    INF
C    INF    1

Distance Table of router C at t=1:
     A    B
A    2    INF
B    INF    1

Distance Table of router A at t=2:
     B    C
B    1    INF
C    INF    2

Distance Table of router B at t=2:
     A    C
A    1    INF
C    INF    1

Distance Table of router C at t=2:
     A    B
A    2    INF
B    INF    1

Distance Table of router A at t=3:
     B    C
B    1    INF
C    INF    1

Distance Table of router B at t=3:
     A    C
A    1    INF
C    INF    1

Distance Table of router C at t=3:
     A    B
A    1    INF
B    INF    1

Distance Table of router A at t=4:
     B    C
B    1    INF
C    INF    1

Distance Table of router B at t=4:
     A    C
A    1    INF
C    INF    1

Distance Table of router C at t=4:
     A    B
A    1    INF
B    INF    1

Routing Table of router A:
B,B,1
C,C,1

Routing Table of router B:
A,A,1
C,C,1

Routing Table of router C:
A,A,1
B,B,1
`
	got := runScenario(t, input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFullRunWithLinkRemoval(t *testing.T) {
	defer goleak.VerifyNone(t)
	input := `A
B
C
START
A B 1
B C 1
UPDATE
B C -1
END
`
	got := runScenario(t, input)

	// C loses its only path and disappears from everyone's routing table
	want := `
Routing Table of router A:
B,B,1

Routing Table of router B:
A,A,1

Routing Table of router C:
`
	idx := strings.Index(got, "\nRouting Table")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, want, got[idx:])
}

func TestFullRunEmptyScenario(t *testing.T) {
	defer goleak.VerifyNone(t)
	assert.Empty(t, runScenario(t, "START\nUPDATE\nEND\n"))
}

func TestFullRunYamlScenario(t *testing.T) {
	defer goleak.VerifyNone(t)
	scenario := `nodes: [A, B]
links:
  - a: A
    b: B
    cost: 2
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o600))

	nodes, topo, updates, err := core.LoadScenario(path, true)
	require.NoError(t, err)
	assert.Empty(t, updates)

	var sb strings.Builder
	formatter := core.NewFormatter(&sb)
	sim := &core.Simulation{
		Nodes:    nodes,
		Topo:     topo,
		Log:      discardLogger(),
		Reporter: formatter,
	}
	sim.Run()
	require.NoError(t, formatter.Flush())

	assert.Contains(t, sb.String(), "Distance Table of router A at t=0:\n     B\nB    2\n")
	assert.Contains(t, sb.String(), "\nRouting Table of router A:\nB,B,2\n")
	c, ok := topo.Cost("A", "B")
	require.True(t, ok)
	assert.Equal(t, state.Metric(2), c)
}
