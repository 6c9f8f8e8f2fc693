// Package logger provides a singleton Zap logger with context-based scoping.
//
// Initialization (once, in main):
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
//	defer logger.Sync()
//
// In handlers/services:
//
//	log := logger.From(ctx)
//	log.Info("refresh successful", logger.UserID(userID))
//
// "dev" renders colored console output, "prod" renders JSON. The HTTP logging
// middleware injects a request-scoped logger (request_id, method, path) into
// the context; From(ctx) falls back to the singleton when no middleware ran.
package logger
