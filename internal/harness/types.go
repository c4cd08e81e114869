package harness

// TraceEvent records one key press and what the calculator showed after it.
type TraceEvent struct {
	Seq     int64  `json:"seq"`
	Key     string `json:"key"`
	Display string `json:"display"`
	Label   string `json:"label,omitempty"`
	Mode    string `json:"mode"`

	// History is the line the press appended, if any.
	History string `json:"history,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates that every expect clause and assertion matched.
	Pass bool `json:"pass"`

	// Trace contains every key press in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation and assertion failures.
	Errors []string `json:"errors,omitempty"`

	// History is the session's history log after the last step.
	History []string `json:"history"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:    true,
		Trace:   []TraceEvent{},
		Errors:  []string{},
		History: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a key press to the trace.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
