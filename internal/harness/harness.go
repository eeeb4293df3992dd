package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/registrar/internal/store"
)

// Harness executes scenarios against a store.
type Harness struct {
	store  *store.Store
	logger *slog.Logger
	seq    int
}

// Option configures a scenario run.
type Option func(*Harness)

// WithLogger sets the logger for step-level diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Create fresh in-memory database
// 2. Execute setup steps (each must succeed)
// 3. Execute flow steps with expect validation
// 4. Evaluate assertions against the final database
//
// Mismatches are reported in Result.Errors. A returned error means the
// scenario could not be executed at all.
func Run(ctx context.Context, scenario *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	st, err := store.Open(":memory:", store.WithLogger(h.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()
	h.store = st

	result := NewResult()

	if err := h.executeSetup(ctx, scenario.Setup, result); err != nil {
		return nil, fmt.Errorf("failed to execute setup: %w", err)
	}

	if err := h.executeFlow(ctx, scenario.Flow, result); err != nil {
		return nil, fmt.Errorf("failed to execute flow: %w", err)
	}

	for _, msg := range EvaluateAssertions(ctx, st, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Debug("scenario finished", "scenario", scenario.Name, "pass", result.Pass)
	return result, nil
}

// executeSetup runs all setup steps. A setup step that does not return ok
// fails the scenario.
func (h *Harness) executeSetup(ctx context.Context, setup []Step, result *Result) error {
	for i, step := range setup {
		ev, err := h.execute(ctx, "setup", step)
		if err != nil {
			return fmt.Errorf("setup step %d (%s): %w", i, step.Op, err)
		}
		result.Trace = append(result.Trace, ev)

		if ev.Status != store.StatusOK.String() {
			result.AddError(fmt.Sprintf("setup[%d] %s: returned %s", i, step.Op, describe(ev)))
		}
	}
	return nil
}

// executeFlow runs all flow steps and validates expect clauses.
func (h *Harness) executeFlow(ctx context.Context, flow []Step, result *Result) error {
	for i, step := range flow {
		ev, err := h.execute(ctx, "flow", step)
		if err != nil {
			return fmt.Errorf("flow step %d (%s): %w", i, step.Op, err)
		}
		result.Trace = append(result.Trace, ev)

		if step.Expect != nil {
			for _, msg := range checkExpect(*step.Expect, ev) {
				result.AddError(fmt.Sprintf("flow[%d] %s: %s", i, step.Op, msg))
			}
		}
	}
	return nil
}

func (h *Harness) execute(ctx context.Context, phase string, step Step) (TraceEvent, error) {
	op, ok := operations[step.Op]
	if !ok {
		return TraceEvent{}, fmt.Errorf("unknown op %q", step.Op)
	}

	ev, err := op.run(ctx, h.store, step.Args)
	if err != nil {
		return TraceEvent{}, err
	}

	h.seq++
	ev.Seq = h.seq
	ev.Phase = phase
	ev.Op = step.Op
	ev.Args = step.Args

	h.logger.Debug("step executed",
		"seq", ev.Seq,
		"phase", phase,
		"op", step.Op,
		"outcome", describe(ev),
	)
	return ev, nil
}

// checkExpect compares a step's outcome with its expect clause and returns
// one message per mismatch.
func checkExpect(e Expect, ev TraceEvent) []string {
	var msgs []string

	if e.Status != "" && e.Status != ev.Status {
		msgs = append(msgs, fmt.Sprintf("expected status %s, got %s", e.Status, describe(ev)))
	}
	if e.Constraint != "" && e.Constraint != ev.Constraint {
		msgs = append(msgs, fmt.Sprintf("expected constraint %q, got %q", e.Constraint, ev.Constraint))
	}

	if e.Found != nil {
		got := ev.Found != nil && *ev.Found
		if *e.Found != got {
			msgs = append(msgs, fmt.Sprintf("expected found=%t, got found=%t", *e.Found, got))
		}
	}
	for _, key := range sortedKeys(e.Record) {
		actual, ok := ev.Record[key]
		if !ok {
			msgs = append(msgs, fmt.Sprintf("record field %q missing", key))
			continue
		}
		if !stateValuesEqual(e.Record[key], actual) {
			msgs = append(msgs, fmt.Sprintf("record field %q = %v, expected %v", key, actual, e.Record[key]))
		}
	}

	if e.IDs != nil && !slices.Equal(e.IDs, ev.IDs) {
		msgs = append(msgs, fmt.Sprintf("expected ids %v, got %v", e.IDs, ev.IDs))
	}
	if e.Count != nil && *e.Count != len(ev.IDs) {
		msgs = append(msgs, fmt.Sprintf("expected %d rows, got %d", *e.Count, len(ev.IDs)))
	}

	return msgs
}
