// Package logger builds slog loggers for the majority CLI and HTTP server.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the handler.
//   - WithLevel sets the minimum level.
//   - WithOutput sets the destination (stderr by default).
//   - WithAttr and WithService attach static attributes.
//   - WithContextExtractors injects attributes pulled from the record's
//     context, for example a request id.
//
// ParseLevel and ParseFormat turn configuration strings into option values
// and report ErrInvalidLevel or ErrInvalidFormat for unknown names.
//
// Attribute helpers (Error, Errors, Group, RequestID, Component, Kind, Source,
// Vote) keep key names consistent. Error and Errors return an empty Attr for
// nil errors, so they can be passed unconditionally:
//
//	log.Info("vote finished", logger.Error(err))
//
// # Usage
//
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithService("majority"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "request handled", logger.Kind("no_majority"))
package logger
