package config

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgconfig "github.com/puntadelverde-srpm/srpm/internal/pkg/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	for _, k := range []string{
		"HTTP_ADDR", "SUMMARIZER_URL", "SUMMARIZER_TIMEOUT", "FEED_ITEM_LIMIT",
		"FETCH_PARALLELISM", "FEED_SOURCES_FILE", "ITEM_RESET_IDS_ON_CLEAR", "SUMMARY_RESET_IDS_ON_CLEAR",
	} {
		t.Setenv(k, "")
	}

	cfg, err := LoadAppConfig(discardLogger(), nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.SummarizerURL)
	assert.Equal(t, 30*time.Second, cfg.SummarizerTimeout)
	assert.Equal(t, 20, cfg.FeedItemLimit)
	assert.Equal(t, 4, cfg.FetchParallelism)
	assert.False(t, cfg.ItemResetIDsOnClear)
	assert.False(t, cfg.SummaryResetIDsOnClear)
	assert.Len(t, cfg.Sources, 3)
}

func TestLoadAppConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SUMMARIZER_URL", "http://summarizer:8000/resumir")
	t.Setenv("SUMMARIZER_TIMEOUT", "5s")
	t.Setenv("FEED_ITEM_LIMIT", "7")
	t.Setenv("FETCH_PARALLELISM", "2")
	t.Setenv("FEED_SOURCES_FILE", "")
	t.Setenv("ITEM_RESET_IDS_ON_CLEAR", "true")
	t.Setenv("SUMMARY_RESET_IDS_ON_CLEAR", "1")

	cfg, err := LoadAppConfig(discardLogger(), nil)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "http://summarizer:8000/resumir", cfg.SummarizerURL)
	assert.Equal(t, 5*time.Second, cfg.SummarizerTimeout)
	assert.Equal(t, 7, cfg.FeedItemLimit)
	assert.Equal(t, 2, cfg.FetchParallelism)
	assert.True(t, cfg.ItemResetIDsOnClear)
	assert.True(t, cfg.SummaryResetIDsOnClear)
}

func TestLoadAppConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SUMMARIZER_URL", "not-a-url")
	t.Setenv("FEED_ITEM_LIMIT", "-3")
	t.Setenv("SUMMARIZER_TIMEOUT", "forever")
	t.Setenv("FEED_SOURCES_FILE", "")

	metrics := pkgconfig.NewConfigMetrics(prometheus.NewRegistry(), "app_test")
	cfg, err := LoadAppConfig(discardLogger(), metrics)
	require.NoError(t, err)

	assert.Empty(t, cfg.SummarizerURL)
	assert.Equal(t, DefaultFeedItemLimit, cfg.FeedItemLimit)
	assert.Equal(t, DefaultSummarizerTimeout, cfg.SummarizerTimeout)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("feed_item_limit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FallbackActive))
}

func TestLoadAppConfig_BadSourcesFile(t *testing.T) {
	t.Setenv("FEED_SOURCES_FILE", "/definitely/missing/sources.yaml")
	_, err := LoadAppConfig(discardLogger(), nil)
	assert.Error(t, err)
}
