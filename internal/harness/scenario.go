package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/registrar/internal/records"
	"github.com/roach88/registrar/internal/store"
)

// Scenario is one check: setup, a flow of operations with expected
// outcomes, and assertions on the final state.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Setup establishes initial state. Every setup step must succeed.
	Setup []Step `yaml:"setup,omitempty"`

	// Flow is the sequence under test.
	Flow []Step `yaml:"flow"`

	// Assertions validate the final database.
	Assertions []Assertion `yaml:"assertions"`
}

// Step invokes one store operation.
type Step struct {
	// Op names the operation, e.g. "add_student" or "student_courses".
	Op string `yaml:"op"`

	// Args holds the operation's arguments. Record writes take the record's
	// fields; keyed reads and deletes take the key field.
	Args map[string]any `yaml:"args"`

	// Expect is checked against the outcome. Nil means any non-fatal
	// outcome is accepted.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect describes the outcome a step must produce. Only the fields set are
// checked.
type Expect struct {
	// Status is ok, conflict or not_found (writes only).
	Status string `yaml:"status,omitempty"`

	// Constraint is the violated constraint on a conflict,
	// e.g. "students.email".
	Constraint string `yaml:"constraint,omitempty"`

	// Found is whether a point read found its record.
	Found *bool `yaml:"found,omitempty"`

	// Record is a subset of the fields a point read must return.
	Record map[string]any `yaml:"record,omitempty"`

	// IDs are the exact ids a listing must return, in order.
	IDs []string `yaml:"ids,omitempty"`

	// Count is the number of rows a listing must return.
	Count *int `yaml:"count,omitempty"`
}

// Assertion validates the final database.
type Assertion struct {
	// Type is count, ids or final_state.
	Type string `yaml:"type"`

	// Table is the relation for count and final_state.
	Table string `yaml:"table,omitempty"`

	// Count is the expected row count (count).
	Count int `yaml:"count,omitempty"`

	// Op and Args name the listing operation to run (ids).
	Op   string         `yaml:"op,omitempty"`
	Args map[string]any `yaml:"args,omitempty"`

	// IDs is the expected listing (ids).
	IDs []string `yaml:"ids,omitempty"`

	// Where selects exactly one row (final_state).
	Where map[string]any `yaml:"where,omitempty"`

	// Expect holds expected column values (final_state). Subset match.
	Expect map[string]any `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertCount      = "count"
	AssertIDs        = "ids"
	AssertFinalState = "final_state"
)

// Expected status values.
var statuses = map[string]bool{
	store.StatusOK.String():       true,
	store.StatusConflict.String(): true,
	store.StatusNotFound.String(): true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	normalizeDates(&scenario)

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// normalizeDates rewrites unquoted YAML dates, which decode as time.Time,
// to the YYYY-MM-DD text the store keeps.
func normalizeDates(s *Scenario) {
	steps := append(append([]Step(nil), s.Setup...), s.Flow...)
	for _, step := range steps {
		dateValues(step.Args)
		if step.Expect != nil {
			dateValues(step.Expect.Record)
		}
	}
	for _, a := range s.Assertions {
		dateValues(a.Args)
		dateValues(a.Where)
		dateValues(a.Expect)
	}
}

func dateValues(m map[string]any) {
	for k, v := range m {
		m[k] = dateValue(v)
	}
}

func dateValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return records.FormatDate(x)
	case map[string]any:
		dateValues(x)
	case []any:
		for i, item := range x {
			x[i] = dateValue(item)
		}
	}
	return v
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Setup {
		if err := validateStep(fmt.Sprintf("setup[%d]", i), step); err != nil {
			return err
		}
		if operations[step.Op].kind != opWrite {
			return fmt.Errorf("setup[%d]: %s is not a write operation", i, step.Op)
		}
	}

	for i, step := range s.Flow {
		if err := validateStep(fmt.Sprintf("flow[%d]", i), step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks the op exists and that expect only uses fields the
// op's kind produces.
func validateStep(where string, step Step) error {
	if step.Op == "" {
		return fmt.Errorf("%s: op is required", where)
	}
	op, ok := operations[step.Op]
	if !ok {
		return fmt.Errorf("%s: unknown op %q", where, step.Op)
	}
	if step.Args == nil {
		return fmt.Errorf("%s: args is required (use empty map if no args)", where)
	}

	e := step.Expect
	if e == nil {
		return nil
	}

	switch op.kind {
	case opWrite:
		if e.Status == "" {
			return fmt.Errorf("%s.expect: status is required for %s", where, step.Op)
		}
		if !statuses[e.Status] {
			return fmt.Errorf("%s.expect: unknown status %q", where, e.Status)
		}
		if e.Found != nil || e.Record != nil || e.IDs != nil || e.Count != nil {
			return fmt.Errorf("%s.expect: %s only reports status and constraint", where, step.Op)
		}
	case opGet:
		if e.Status != "" || e.Constraint != "" || e.IDs != nil || e.Count != nil {
			return fmt.Errorf("%s.expect: %s only reports found and record", where, step.Op)
		}
	case opList:
		if e.Status != "" || e.Constraint != "" || e.Found != nil || e.Record != nil {
			return fmt.Errorf("%s.expect: %s only reports ids and count", where, step.Op)
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertCount:
		if a.Table == "" {
			return fmt.Errorf("assertions[%d]: table is required for count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertIDs:
		op, ok := operations[a.Op]
		if !ok || op.kind != opList {
			return fmt.Errorf("assertions[%d]: ids requires a listing op, got %q", index, a.Op)
		}
	case AssertFinalState:
		if a.Table == "" {
			return fmt.Errorf("assertions[%d]: table is required for final_state", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
