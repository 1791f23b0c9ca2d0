package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/dyntree/dyncon"
)

// Runner replays scenarios. The zero value writes nowhere and logs nowhere.
type Runner struct {
	// Out receives one line per step. Nil discards.
	Out io.Writer

	// Logger receives run progress and is passed to the forest. Nil discards.
	Logger *slog.Logger

	// Options are appended after the ones derived from the scenario file.
	Options []dyncon.Option
}

// Run builds a forest from s.Edges and executes s.Steps in order.
//
// A dyncon error (unknown vertex, duplicate edge, ...) aborts the run and is
// returned wrapped with the step index. Unmet expectations are collected; if
// any exist the returned error wraps ErrExpectation. The context is checked
// between steps.
func (r *Runner) Run(ctx context.Context, s *Scenario) (Report, error) {
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := []dyncon.Option{dyncon.WithLogger(log)}
	if s.Check {
		opts = append(opts, dyncon.WithConsistencyChecks())
	}
	if s.Shallow {
		opts = append(opts, dyncon.WithShallowLinking())
	}
	opts = append(opts, r.Options...)

	edges := make([]dyncon.Edge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = e.Edge()
	}
	f, err := dyncon.New(edges, opts...)
	if err != nil {
		return Report{}, fmt.Errorf("scenario: building forest: %w", err)
	}
	log.Info("forest ready", "vertices", f.VertexCount(), "edges", f.EdgeCount(),
		"components", f.ComponentCount())

	var rep Report
	for i, st := range s.Steps {
		select {
		case <-ctx.Done():
			return rep, ctx.Err()
		default:
		}

		if err := r.step(out, f, i, st, &rep); err != nil {
			return rep, fmt.Errorf("scenario: step %d (%s): %w", i, st, err)
		}
		rep.Steps++
	}
	rep.Components = f.ComponentCount()

	log.Info("scenario finished", "steps", rep.Steps, "checked", rep.Checked,
		"failures", len(rep.Failures), "components", rep.Components)
	if len(rep.Failures) > 0 {
		return rep, fmt.Errorf("%w: %d of %d", ErrExpectation, len(rep.Failures), rep.Checked)
	}

	return rep, nil
}

func (r *Runner) step(out io.Writer, f *dyncon.Forest, i int, st Step, rep *Report) error {
	switch st.Op {
	case OpConnected:
		ok, err := f.Connected(st.From, st.To)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %v\n", st, ok)
		if st.Expect != nil {
			rep.Checked++
			if *st.Expect != ok {
				rep.Failures = append(rep.Failures, Failure{
					Step: i, Desc: st.String(),
					Want: strconv.FormatBool(*st.Expect), Got: strconv.FormatBool(ok),
				})
			}
		}

	case OpAdd:
		if err := f.AddEdge(st.From, st.To, st.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, st)

	case OpDelete:
		if err := f.DeleteEdge(st.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, st)

	case OpComponents:
		comps := f.Components()
		fmt.Fprintf(out, "%s %d %v\n", st, len(comps), comps)
		if st.ExpectCount != nil {
			rep.Checked++
			if *st.ExpectCount != len(comps) {
				rep.Failures = append(rep.Failures, Failure{
					Step: i, Desc: st.String(),
					Want: strconv.Itoa(*st.ExpectCount), Got: strconv.Itoa(len(comps)),
				})
			}
		}
	}

	return nil
}
