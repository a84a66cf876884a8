package types

import "time"

// Configuration is the enumerated set of options the engine recognizes
// (§3). It is supplied by the hosting CLI and accepted as an opaque
// immutable struct at search start (§6) — the core never parses a
// config file itself.
type Configuration struct {
	HumanCheckerOn bool
	APIMode        bool
	Sensitivity    Sensitivity
	Timeout        time.Duration
	Offline        bool
	RegexList      []string

	// MaxDepth bounds node depth (§4.4 termination condition iv); 0 means
	// the spec default of 20.
	MaxDepth int
	// MaxQueueSize bounds the priority queue (§5 resource limits); 0
	// means the spec default of 100_000.
	MaxQueueSize int
	// Workers sizes the worker pool (§5); 0 means runtime.NumCPU().
	Workers int
}

// WithDefaults returns a copy of cfg with zero-valued fields replaced by
// the spec's stated defaults (max depth 20, queue 100k). A zero timeout
// is left alone: the search engine treats it as no time limit.
func (cfg Configuration) WithDefaults() Configuration {
	out := cfg
	if out.MaxDepth <= 0 {
		out.MaxDepth = 20
	}
	if out.MaxQueueSize <= 0 {
		out.MaxQueueSize = 100_000
	}
	return out
}
