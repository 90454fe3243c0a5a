package core

import (
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/tint"
	"github.com/goccy/go-yaml"
	"github.com/routelab/dvsim/state"
	slogmulti "github.com/samber/slog-multi"
)

// Options configure one simulator invocation.
type Options struct {
	ScenarioPath string // empty means stdin
	Yaml         bool   // parse the scenario as YAML instead of the line format
	LogPath      string // if not empty, logs are also written to this file
	LogLevel     slog.Level
}

// Start wires up logging, loads the scenario, and runs the simulation.
// Report output goes to out; logs go to stderr and never pollute the report
// stream.
func Start(opts Options, out io.Writer) error {
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        opts.LogLevel,
			AddSource:    false,
			CustomPrefix: "dvsim",
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if opts.LogPath != "" {
		err := os.MkdirAll(path.Dir(opts.LogPath), 0700)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(opts.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return err
		}
		defer f.Close()
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.LogLevel}))
	}

	log := slog.New(slogmulti.Fanout(handlers...))

	nodes, topo, updates, err := LoadScenario(opts.ScenarioPath, opts.Yaml)
	if err != nil {
		return err
	}
	log.Debug("scenario loaded", "nodes", len(nodes), "links", topo.EdgeCount(), "updates", len(updates))

	formatter := NewFormatter(out)
	sim := &Simulation{
		Nodes:    nodes,
		Topo:     topo,
		Updates:  updates,
		Log:      log,
		Reporter: formatter,
	}
	sim.Run()
	return formatter.Flush()
}

// LoadScenario reads a scenario from the given path, or stdin when the path
// is empty.
func LoadScenario(scenarioPath string, asYaml bool) ([]state.NodeId, *state.Topology, []state.Update, error) {
	var r io.Reader = os.Stdin
	if scenarioPath != "" {
		f, err := os.Open(scenarioPath)
		if err != nil {
			return nil, nil, nil, err
		}
		defer f.Close()
		r = f
	}
	if asYaml {
		buf, err := io.ReadAll(r)
		if err != nil {
			return nil, nil, nil, err
		}
		var cfg state.ScenarioCfg
		err = yaml.Unmarshal(buf, &cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		err = state.ScenarioValidator(&cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		nodes, topo, updates := cfg.Scenario()
		return nodes, topo, updates, nil
	}
	return ParseScenario(r)
}
