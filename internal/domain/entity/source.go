package entity

// Source represents a feed source polled by the ingestion cycle.
type Source struct {
	Name    string `json:"name" yaml:"name"`
	FeedURL string `json:"url" yaml:"url"`
}

// Validate validates the Source entity fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return ValidateURL(s.FeedURL)
}
