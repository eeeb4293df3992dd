package harness

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// FormatTrace renders a trace one step per line:
//
//	3 flow add_student email=a@b.edu student_id=S001 -> conflict (students.student_id)
//
// Args are printed in key order, so the output is stable across runs.
func FormatTrace(trace []TraceEvent) []byte {
	var buf strings.Builder
	for _, ev := range trace {
		fmt.Fprintf(&buf, "%d %s %s", ev.Seq, ev.Phase, ev.Op)
		if args := formatArgs(ev.Args); args != "" {
			fmt.Fprintf(&buf, " %s", args)
		}
		fmt.Fprintf(&buf, " -> %s\n", describe(ev))
	}
	return []byte(buf.String())
}

// describe summarizes an event's outcome.
func describe(ev TraceEvent) string {
	switch {
	case ev.Status != "":
		if ev.Constraint != "" {
			return fmt.Sprintf("%s (%s)", ev.Status, ev.Constraint)
		}
		return ev.Status
	case ev.Found != nil:
		if *ev.Found {
			return "found"
		}
		return "missing"
	default:
		return "[" + strings.Join(ev.IDs, " ") + "]"
	}
}

func formatArgs(args map[string]any) string {
	parts := make([]string, 0, len(args))
	for _, k := range sortedKeys(args) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, args[k]))
	}
	return strings.Join(parts, " ")
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(context.Background(), scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result's trace against a golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, FormatTrace(result.Trace))
}
