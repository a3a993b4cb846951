package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/puntadelverde-srpm/srpm/docs" // swagger docs

	"github.com/puntadelverde-srpm/srpm/internal/config"
	hhttp "github.com/puntadelverde-srpm/srpm/internal/handler/http"
	"github.com/puntadelverde-srpm/srpm/internal/handler/http/ingest"
	hitem "github.com/puntadelverde-srpm/srpm/internal/handler/http/item"
	"github.com/puntadelverde-srpm/srpm/internal/handler/http/requestid"
	hsummary "github.com/puntadelverde-srpm/srpm/internal/handler/http/summary"
	"github.com/puntadelverde-srpm/srpm/internal/infra/adapter/persistence/memory"
	"github.com/puntadelverde-srpm/srpm/internal/infra/scraper"
	"github.com/puntadelverde-srpm/srpm/internal/infra/summarizer"
	"github.com/puntadelverde-srpm/srpm/internal/infra/worker"
	"github.com/puntadelverde-srpm/srpm/internal/observability/logging"
	"github.com/puntadelverde-srpm/srpm/internal/observability/metrics"
	"github.com/puntadelverde-srpm/srpm/internal/observability/tracing"
	pkgconfig "github.com/puntadelverde-srpm/srpm/internal/pkg/config"
	"github.com/puntadelverde-srpm/srpm/internal/resilience/circuitbreaker"
	"github.com/puntadelverde-srpm/srpm/internal/usecase/digest"
	fetchUC "github.com/puntadelverde-srpm/srpm/internal/usecase/fetch"
	itemUC "github.com/puntadelverde-srpm/srpm/internal/usecase/item"
	sumUC "github.com/puntadelverde-srpm/srpm/internal/usecase/summary"
)

// @title           SRPM News Digest API
// @version         1.0
// @description     Ingests RSS/Atom feeds, deduplicates and sanitizes items, and stores the summaries produced by an external summarizer.

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := logging.New(os.Stdout)
	slog.SetDefault(logger)

	shutdownTracing := tracing.Setup()

	appMetrics := pkgconfig.NewConfigMetrics(prometheus.DefaultRegisterer, "app")
	cfg, err := config.LoadAppConfig(logger, appMetrics)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	workerMetrics := worker.NewWorkerMetrics(prometheus.DefaultRegisterer)
	workerCfg := worker.LoadConfigFromEnv(logger, workerMetrics)

	logger.Info("configuration loaded",
		slog.String("http_addr", cfg.HTTPAddr),
		slog.Bool("summarizer_enabled", cfg.SummarizerURL != ""),
		slog.Duration("summarizer_timeout", cfg.SummarizerTimeout),
		slog.Int("feed_item_limit", cfg.FeedItemLimit),
		slog.Int("fetch_parallelism", cfg.FetchParallelism),
		slog.Int("sources", len(cfg.Sources)),
		slog.String("cron_schedule", workerCfg.CronSchedule),
		slog.String("timezone", workerCfg.Timezone),
		slog.Duration("cycle_timeout", workerCfg.CycleTimeout))

	app := wire(logger, cfg)

	scheduler, err := worker.NewScheduler(*workerCfg, app.digest, workerMetrics, logger)
	if err != nil {
		logger.Error("failed to create scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	mux := http.NewServeMux()
	hitem.Register(mux, app.items)
	hsummary.Register(mux, app.summaries)
	ingest.Register(mux, app.digest, app.fetch, cfg.FeedItemLimit)
	mux.Handle("GET /health", &hhttp.HealthHandler{
		Items:       app.itemRepo,
		Summaries:   app.summaryRepo,
		Breakers:    app.breakers,
		BreakerSets: []hhttp.BreakerSet{app.feedFetcher},
		Version:     getVersion(),
	})
	mux.Handle("GET /health/live", hhttp.LiveHandler{})
	mux.Handle("GET /health/ready", scheduler.ReadyHandler())
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	handler := hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(hhttp.DefaultMaxBodyBytes),
		hhttp.MetricsMiddleware,
	)

	run(logger, cfg.HTTPAddr, handler, scheduler, shutdownTracing)
}

type components struct {
	itemRepo    *memory.ItemRepo
	summaryRepo *memory.SummaryRepo
	feedFetcher *scraper.RSSFetcher
	fetch       *fetchUC.Service
	digest      *digest.Service
	items       *itemUC.Service
	summaries   *sumUC.Service
	breakers    []*circuitbreaker.CircuitBreaker
}

func wire(logger *slog.Logger, cfg *config.AppConfig) *components {
	itemRepo := memory.NewItemRepo(memory.WithResetIDsOnClear(cfg.ItemResetIDsOnClear))
	summaryRepo := memory.NewSummaryRepo(memory.WithResetIDsOnClear(cfg.SummaryResetIDsOnClear))
	sourceRepo := memory.NewSourceRepo(cfg.Sources)
	metrics.UpdateSourcesTotal(len(cfg.Sources))

	feedFetcher := scraper.NewRSSFetcher(createHTTPClient(),
		scraper.WithBreakerConfig(circuitbreaker.FeedFetchConfig()))
	for _, src := range cfg.Sources {
		// created up front so /health lists every feed before the first cycle
		feedFetcher.Breaker(src.FeedURL)
	}
	fetchSvc := fetchUC.NewService(sourceRepo, itemRepo, feedFetcher, cfg.FetchParallelism)

	var breakers []*circuitbreaker.CircuitBreaker
	sumCfg := summarizer.HTTPConfig{URL: cfg.SummarizerURL, Timeout: cfg.SummarizerTimeout}
	var sum digest.Summarizer
	if err := sumCfg.Validate(); err != nil {
		logger.Warn("summarization disabled", slog.Any("reason", err))
		sum = summarizer.NewNoOp()
	} else {
		sumBreaker := circuitbreaker.New(circuitbreaker.SummarizerConfig())
		breakers = append(breakers, sumBreaker)
		sum = summarizer.NewHTTPSummarizer(
			sumCfg,
			summarizer.WithHTTPClient(createHTTPClient()),
			summarizer.WithCircuitBreaker(sumBreaker),
		)
	}

	return &components{
		itemRepo:    itemRepo,
		summaryRepo: summaryRepo,
		feedFetcher: feedFetcher,
		fetch:       fetchSvc,
		digest:      digest.NewService(fetchSvc, itemRepo, summaryRepo, sum, cfg.FeedItemLimit),
		items:       itemUC.NewService(itemRepo),
		summaries:   sumUC.NewService(summaryRepo),
		breakers:    breakers,
	}
}

func createHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// run serves until SIGINT or SIGTERM, then stops the scheduler and drains the server.
func run(logger *slog.Logger, addr string, handler http.Handler, scheduler *worker.Scheduler, shutdownTracing func(context.Context) error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	scheduler.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Error("scheduler shutdown failed", slog.Any("error", err))
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
