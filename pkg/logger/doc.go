// Package logger provides a small slog factory with functional options, so
// products built on simkit configure structured logging in one place.
//
// The generation core itself never logs from its hot path (it performs no
// I/O at all); this package exists for the surrounding product code:
// loaders, exporters, CLI entry points.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(slog.String("service", "cohort-builder")),
//	)
//	log.Info("cohort generated", "size", 500)
//
// Defaults are production-safe: JSON output at info level to stdout.
package logger
