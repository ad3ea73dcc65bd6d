// Package logger provides structured logging for tabkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. Pipelines and demos log
// to stderr by default so stdout stays reserved for rendered results.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.WithComponent("students")
//	log.Info("stage completed", logger.StageFields("filter", 4))
package logger
