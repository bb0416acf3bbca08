// Package logger provides structured logging for the gateway built on zerolog.
//
// A single global logger is initialized once at startup from configuration;
// packages obtain component-tagged child loggers via WithComponent:
//
//	log := logger.WithComponent("langflow")
//	log.Info("Fetched flows", logger.Fields("count", len(flows)))
package logger
