// Package config assembles the service configuration from the environment and
// the optional feed sources file.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	pkgconfig "github.com/puntadelverde-srpm/srpm/internal/pkg/config"
)

// Defaults.
const (
	DefaultHTTPAddr          = ":8080"
	DefaultSummarizerTimeout = 30 * time.Second
	DefaultFeedItemLimit     = 20
	DefaultFetchParallelism  = 4
)

// AppConfig holds the settings read once at startup.
type AppConfig struct {
	HTTPAddr string

	// SummarizerURL is the endpoint receiving item batches. Empty disables
	// summarization (a no-op client is wired instead).
	SummarizerURL     string
	SummarizerTimeout time.Duration

	// FeedItemLimit is the per-feed entry limit used by scheduled cycles and
	// by requests that do not specify one.
	FeedItemLimit    int
	FetchParallelism int

	SourcesFile string
	Sources     []entity.Source

	ItemResetIDsOnClear    bool
	SummaryResetIDsOnClear bool
}

// LoadAppConfig reads the environment. Invalid values fall back to defaults
// with a warning; only an unreadable or invalid sources file is an error.
func LoadAppConfig(logger *slog.Logger, metrics *pkgconfig.ConfigMetrics) (*AppConfig, error) {
	cfg := &AppConfig{
		HTTPAddr: pkgconfig.LoadEnvString("HTTP_ADDR", DefaultHTTPAddr),
		SummarizerURL: pkgconfig.LoadEnvWithFallback("SUMMARIZER_URL", "", pkgconfig.ValidateHTTPURL).
			Resolve(logger, metrics, "summarizer_url"),
		SummarizerTimeout: pkgconfig.LoadEnvDuration("SUMMARIZER_TIMEOUT", DefaultSummarizerTimeout, pkgconfig.ValidatePositiveDuration).
			Resolve(logger, metrics, "summarizer_timeout"),
		FeedItemLimit: pkgconfig.LoadEnvInt("FEED_ITEM_LIMIT", DefaultFeedItemLimit, func(v int) error {
			return pkgconfig.ValidateIntRange(v, 1, 1000)
		}).Resolve(logger, metrics, "feed_item_limit"),
		FetchParallelism: pkgconfig.LoadEnvInt("FETCH_PARALLELISM", DefaultFetchParallelism, func(v int) error {
			return pkgconfig.ValidateIntRange(v, 1, 64)
		}).Resolve(logger, metrics, "fetch_parallelism"),
		SourcesFile:            pkgconfig.LoadEnvString("FEED_SOURCES_FILE", ""),
		ItemResetIDsOnClear:    pkgconfig.LoadEnvBool("ITEM_RESET_IDS_ON_CLEAR", false).Resolve(logger, metrics, "item_reset_ids_on_clear"),
		SummaryResetIDsOnClear: pkgconfig.LoadEnvBool("SUMMARY_RESET_IDS_ON_CLEAR", false).Resolve(logger, metrics, "summary_reset_ids_on_clear"),
	}

	sources, err := LoadSources(cfg.SourcesFile)
	if err != nil {
		return nil, fmt.Errorf("load sources %q: %w", cfg.SourcesFile, err)
	}
	cfg.Sources = sources

	if metrics != nil {
		metrics.RecordLoadTimestamp()
	}
	return cfg, nil
}
