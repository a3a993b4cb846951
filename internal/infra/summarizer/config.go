package summarizer

import (
	"fmt"
	"time"

	pkgconfig "github.com/puntadelverde-srpm/srpm/internal/pkg/config"
)

// DefaultTimeout bounds one summarizer call, connect and read included.
const DefaultTimeout = 30 * time.Second

// HTTPConfig configures the remote summarization endpoint.
type HTTPConfig struct {
	// URL receives a POST with the JSON array of items.
	URL string
	// Timeout applies to the whole exchange. Zero means DefaultTimeout.
	Timeout time.Duration
}

func (c HTTPConfig) Validate() error {
	if err := pkgconfig.ValidateHTTPURL(c.URL); err != nil {
		return fmt.Errorf("summarizer url: %w", err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("summarizer timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}

func (c HTTPConfig) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
