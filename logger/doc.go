// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	logger.Init(logger.Config{Level: "info", Format: "json"})
//	log := logger.WithComponent("httpclient")
//	log.Info("client assembled", logger.Fields("server_url", url))
package logger
