// Package logger provides structured logging built on zap.
//
// New constructs the logger from configuration: debug level switches to the
// development config, and the format selects console (colored, for terminal
// use) or json (for aggregation) encoding.
//
// WithBuildID attaches the build correlation field used by the bake and push
// commands.
package logger
