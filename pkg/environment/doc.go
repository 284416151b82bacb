// Package environment names the deployment environment (development,
// staging, production) and carries it through context.Context so it can be
// attached to log records with LoggerExtractor.
package environment
