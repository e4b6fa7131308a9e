// Package logger builds configured log/slog loggers and provides shared
// attribute constructors so log keys stay consistent across the module.
//
// # Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "demo")),
//	)
//
//	log.Warn("request rejected", logger.Component("responder"), logger.Error(err))
//
// The factory is startup-time code: invalid formats panic rather than
// producing a silently misconfigured logger.
package logger
