// Package logging provides category-keyed structured logging for the
// search engine and its collaborators. It mirrors the teacher's
// internal/logging category model (one Category per subsystem, a
// package-level registry, Get(category) returning a scoped logger) but
// backs it with a *zap.Logger instead of a bare *log.Logger, and never
// owns process-wide initialization: the hosting CLI constructs and
// injects the *zap.Logger (logging initialization is out of core scope
// per spec §1); Init defaults to zap.NewNop() until called.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

// Category identifies a logging subsystem within the core.
type Category string

const (
	CategorySearch   Category = "search"
	CategoryDecoders Category = "decoders"
	CategoryCheckers Category = "checkers"
	CategoryStore    Category = "store"
	CategoryTimer    Category = "timer"
	CategoryPlugins  Category = "plugins"
)

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	cache   = make(map[Category]*zap.SugaredLogger)
)

// Init injects the root *zap.Logger the hosting process constructed. A
// nil logger resets the package to a no-op logger. Safe to call
// concurrently; existing per-category loggers are rebuilt lazily.
func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	base = l
	cache = make(map[Category]*zap.SugaredLogger)
}

// Get returns the sugared logger scoped to category, tagged with a
// "component" field so structured log sinks can filter by subsystem the
// way the teacher's per-category log files do.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := cache[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := cache[category]; ok {
		return l
	}
	l := base.Sugar().With("component", string(category))
	cache[category] = l
	return l
}
