// Package httpserver wraps net/http.Server with graceful shutdown,
// signal handling, and structured lifecycle logging.
//
// # Usage
//
//	srv := httpserver.New(
//		httpserver.WithAddr(cfg.Addr),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives, or the
// listener fails; in the first two cases in-flight requests are drained
// within the shutdown timeout.
package httpserver
