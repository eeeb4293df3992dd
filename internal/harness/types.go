package harness

// TraceEvent records one executed step and what it produced.
type TraceEvent struct {
	Seq   int            `json:"seq"`
	Phase string         `json:"phase"` // "setup" or "flow"
	Op    string         `json:"op"`
	Args  map[string]any `json:"args,omitempty"`

	// Writes.
	Status     string `json:"status,omitempty"`
	Constraint string `json:"constraint,omitempty"`

	// Point reads.
	Found  *bool          `json:"found,omitempty"`
	Record map[string]any `json:"record,omitempty"`

	// Listings. Non-nil (possibly empty) for every listing.
	IDs []string `json:"ids,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step matched its expect clause and every
	// assertion held.
	Pass bool `json:"pass"`

	// Trace contains every executed step in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
