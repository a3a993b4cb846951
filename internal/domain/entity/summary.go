package entity

// Summary is a result produced by the external summarization service.
// Its content is opaque to the pipeline; it is keyed by its own ID sequence.
type Summary struct {
	ID       int64  `json:"id"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

// Clone returns a copy of the summary.
func (s *Summary) Clone() *Summary {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Validate checks the user-editable fields of a summary.
func (s *Summary) Validate() error {
	if s.Headline == "" {
		return &ValidationError{Field: "headline", Message: "is required"}
	}
	return nil
}
