// Package zap adapts go.uber.org/zap to the guard log.Logger interface.
//
// Use New to build a standalone logger for a guard, or Wrap to reuse the zap
// logger the host service already has.
package zap
