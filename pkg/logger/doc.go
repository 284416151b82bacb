// Package logger builds *slog.Logger instances with functional options and
// context-aware attribute injection.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "issuecheck"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
// NewFromEnv reads APP_ENV, LOG_LEVEL and LOG_FORMAT through the config
// package. Nop returns a discarding logger, which is the default for
// components that accept an optional logger.
//
// Attribute helpers (Error, Username, StatusCode, ...) keep key names
// consistent across packages.
package logger
