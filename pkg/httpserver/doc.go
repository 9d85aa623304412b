// Package httpserver wraps net/http with configurable timeouts, lifecycle
// hooks and context-driven graceful shutdown.
//
// Run binds the listener, serves the handler and returns once the supplied
// context is cancelled (or Shutdown is called), after draining in-flight
// requests for at most the shutdown timeout. Signal handling is left to the
// caller, typically via signal.NotifyContext:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Config carries `env` tags so it can be embedded in an application config
// loaded by pkg/config.
//
// HealthCheckHandler returns a liveness/readiness probe handler.
//
// # Error Handling
//
// Errors are joined with the ErrStart or ErrShutdown sentinels and can be
// inspected with errors.Is.
package httpserver
