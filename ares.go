// Package ares is the public entry point of the Ares decoding engine
// (spec §6): Search takes a piece of text of unknown encoding and
// returns either a Solution or one of the typed search errors.
package ares

import (
	"context"

	"go.uber.org/zap"

	"github.com/RenTrieu/Ares/internal/checkers"
	"github.com/RenTrieu/Ares/internal/decoders"
	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/plugins"
	"github.com/RenTrieu/Ares/internal/search"
	"github.com/RenTrieu/Ares/internal/store"
	"github.com/RenTrieu/Ares/internal/timer"
	"github.com/RenTrieu/Ares/internal/types"
)

// Re-exported data model (§6 Public API): callers of this package never
// need to import internal/types directly.
type (
	Text          = types.Text
	Configuration = types.Configuration
	Solution      = types.Solution
	CrackResult   = types.CrackResult
	Sensitivity   = types.Sensitivity
	Decoder       = types.Decoder
	Checker       = types.Checker
)

const (
	SensitivityLow    = types.SensitivityLow
	SensitivityMedium = types.SensitivityMedium
	SensitivityHigh   = types.SensitivityHigh
)

// Re-exported sentinel errors (§6, §9 error surface).
var (
	ErrTimedOut     = types.ErrTimedOut
	ErrExhausted    = types.ErrExhausted
	ErrInvalidInput = types.ErrInvalidInput
)

// Prompter is implemented at the caller's edge to back the Human
// Checker (§4.2). A nil Prompter in Options disables human confirmation
// regardless of Configuration.HumanCheckerOn.
type Prompter = checkers.Prompter

// Options carries the dependencies a caller may inject alongside
// Configuration: a Logger (defaults to a no-op logger, §10.1 — core
// never constructs its own), a Prompter for interactive confirmation, a
// PluginDir to load additional decoders from at startup (§4.1,
// yaegi-interpreted), a GenAI API key to back the neural classifier
// escalation (§4.2.4), and a database path (empty selects
// store.DefaultPath(); ":memory:" gives an in-memory store, and so does a
// path that cannot be opened).
type Options struct {
	Logger       *zap.Logger
	Prompter     Prompter
	PluginDir    string
	GenAIAPIKey  string
	GenAIModel   string
	DatabasePath string
}

// Engine is a configured, reusable instance of the Ares core: one
// Registry, one Checker pipeline, one Knowledge Store, and one Clock,
// shared across repeated Search calls the way a long-lived CLI or
// service process would want (§6 "the core is safe to embed").
type Engine struct {
	registry *decoders.Registry
	checker  *checkers.Athena
	store    *store.Store
	human    *checkers.Human
	clock    *timer.Clock
	scorer   *search.Scorer
	engine   *search.Engine
}

// New builds an Engine from cfg and opts. Any failure opening the
// Knowledge Store is non-fatal: the Engine falls back to running
// without a cache (§4.3).
func New(cfg Configuration, opts Options) (*Engine, error) {
	cfg = cfg.WithDefaults()

	if opts.Logger != nil {
		logging.Init(opts.Logger)
	}

	registry := decoders.NewRegistry()
	if opts.PluginDir != "" {
		loaded, err := plugins.NewLoader().LoadDir(opts.PluginDir)
		if err != nil {
			logging.Get(logging.CategoryPlugins).Warnw("plugin directory load failed", "dir", opts.PluginDir, "err", err)
		}
		for _, d := range loaded {
			registry.Register(d)
		}
	}

	var neural checkers.NeuralClassifier
	if !cfg.Offline && opts.GenAIAPIKey != "" {
		n, err := checkers.NewGenAIClassifier(opts.GenAIAPIKey, opts.GenAIModel)
		if err != nil {
			logging.Get(logging.CategoryCheckers).Warnw("neural classifier disabled", "err", err)
		} else {
			neural = n
		}
	}

	athena := checkers.NewAthena(checkers.AthenaConfig{
		Sensitivity:   cfg.Sensitivity,
		ExtraPatterns: cfg.RegexList,
		Neural:        neural,
	})

	dbPath := opts.DatabasePath
	if dbPath == "" {
		if p, err := store.DefaultPath(); err == nil {
			dbPath = p
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logging.Get(logging.CategoryStore).Warnw("knowledge store unavailable, continuing without cache", "err", err)
		st = nil
	}

	clock := timer.New()

	var cacheStore search.CacheStore
	var failedStore search.FailedDecodeChecker
	var humanRecorder checkers.FailedDecodeRecorder
	if st != nil {
		cacheStore = st
		failedStore = st
		humanRecorder = st
	}

	var human *checkers.Human
	if cfg.HumanCheckerOn && opts.Prompter != nil {
		human = checkers.NewHuman(true, cfg.APIMode, opts.Prompter, humanRecorder, clock)
	}

	scorer := search.NewScorer(athena.FormatHinter())

	var humanGate search.HumanGate
	if human != nil {
		humanGate = human
	}

	eng := search.New(registry, athena, cacheStore, failedStore, humanGate, clock, scorer)

	return &Engine{
		registry: registry,
		checker:  athena,
		store:    st,
		human:    human,
		clock:    clock,
		scorer:   scorer,
		engine:   eng,
	}, nil
}

// Search runs the Search Engine (§4.4) against input using cfg,
// returning the Solution on success or a typed error (ErrTimedOut,
// ErrExhausted, ErrInvalidInput).
func (e *Engine) Search(ctx context.Context, input Text, cfg Configuration) (Solution, error) {
	return e.engine.Search(ctx, input, cfg)
}

// Close releases the Engine's Knowledge Store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Registry exposes the decoder registry so callers can Register
// additional decoders at runtime (§6 "new decoders are added ... through
// a startup-time registration call").
func (e *Engine) Registry() *decoders.Registry {
	return e.registry
}
