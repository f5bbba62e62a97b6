// Package log defines the logging interface and typed fields used by lib-guard.
//
// The guard engine logs through this interface only; the zap package provides
// the production adapter and NewNop the silent default.
package log
