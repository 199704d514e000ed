package harness

// Result is the outcome of running one scenario.
type Result struct {
	// Name is the scenario name.
	Name string `json:"name"`

	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// URL is the produced URL, empty when conversion failed.
	URL string `json:"url,omitempty"`

	// Cols is the produced column array as it appears in the URL.
	Cols [][]any `json:"cols,omitempty"`

	// Digest identifies the produced grid (quirk.Digest).
	Digest string `json:"digest,omitempty"`

	// ErrorCode is the code of a failed conversion.
	ErrorCode string `json:"error_code,omitempty"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(name string) *Result {
	return &Result{
		Name:   name,
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
