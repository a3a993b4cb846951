// Package logging builds the process logger and carries request-scoped loggers
// through context.
//
// LOG_LEVEL=debug enables debug output and LOG_FORMAT=text switches from JSON
// to the human-readable text handler.
//
//	logger := logging.New(os.Stdout)
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("processing request")
//	}
package logging
