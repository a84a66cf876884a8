package search

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/timer"
	"github.com/RenTrieu/Ares/internal/types"
)

// DecoderSource supplies the registry's decoders in popularity order
// (§4.4 "for d in decoders in popularity order"). Satisfied by
// *decoders.Registry; declared narrowly here so this package does not
// need to import internal/decoders.
type DecoderSource interface {
	All() []types.Decoder
}

// CacheStore is the slice of the Knowledge Store the engine consults
// before expansion and writes on success (§4.3, §4.4 algorithm sketch).
type CacheStore interface {
	ReadCache(encodedText string) (*types.CacheRow, bool, error)
	InsertCache(row types.CacheRow) error
}

// FailedDecodeChecker reports whether a candidate was previously vetoed
// under the active checker (§3 invariant, §4.4 "Early skip").
type FailedDecodeChecker interface {
	IsFailedUnder(plaintext, checkerName string) (bool, error)
}

// HumanGate is the human-confirmation step (§4.2); Confirm returning
// false means "treat as negative, continue searching" (§4.2 "no"
// answer).
type HumanGate interface {
	Confirm(result types.CheckResult) bool
}

// Engine is the Search Engine orchestrator (§4.4, the heart of the
// core).
type Engine struct {
	decoders DecoderSource
	checker  types.Checker
	store    CacheStore
	failed   FailedDecodeChecker
	human    HumanGate
	clock    *timer.Clock
	scorer   *Scorer

	cancelled atomic.Bool
}

// New builds an Engine. store, failed and human may all be nil (a
// degraded-but-functional engine: §4.3 "any database error is non-fatal
// to search" extends naturally to "no database configured at all").
func New(decoders DecoderSource, checker types.Checker, store CacheStore, failed FailedDecodeChecker, human HumanGate, clock *timer.Clock, scorer *Scorer) *Engine {
	return &Engine{
		decoders: decoders,
		checker:  checker,
		store:    store,
		failed:   failed,
		human:    human,
		clock:    clock,
		scorer:   scorer,
	}
}

// Search runs the best-first search of §4.4 against input, returning a
// Solution or a typed SearchError (ErrTimedOut, ErrExhausted,
// ErrInvalidInput).
func (e *Engine) Search(ctx context.Context, input types.Text, cfg types.Configuration) (types.Solution, error) {
	log := logging.Get(logging.CategorySearch)

	if input == "" {
		return types.Solution{}, types.ErrInvalidInput
	}
	cfg = cfg.WithDefaults()
	e.cancelled.Store(false) // Engine instances are reused across repeated Search calls (§6)

	e.clock.Reset()
	e.clock.Start()

	// cfg.Timeout is enforced against e.clock, not ctx: the clock is the
	// pausable wall-clock timer of §4.2/§4.5, paused for the duration of a
	// Human Checker prompt (Human.Confirm). Gating on a context deadline
	// instead would let a slow prompt burn through the caller's budget.
	// ctx itself is left alone so external cancellation still works.

	// Cache short-circuit on the root itself (§3 "A text appearing as
	// encoded_text in the cache shall not be re-expanded in that process
	// instance; the cached result is returned directly").
	if sol, ok := e.cacheHit(string(input)); ok {
		log.Debugw("root cache hit", "input", string(input))
		return sol, nil
	}

	queue := NewQueue(cfg.MaxQueueSize)
	dedup := NewDedup()
	root := types.SearchNode{Text: input, Priority: 1 << 30} // §4.4 "enqueue(root, priority = +inf)"
	dedup.InsertIfAbsent(input)
	queue.Enqueue(root)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	result := &sharedResult{}
	var inFlight int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			return e.worker(gctx, cfg, queue, dedup, result, &inFlight)
		})
	}
	_ = g.Wait()

	elapsed := e.clock.Elapsed()

	if sol, ok := result.get(); ok {
		sol.ElapsedMS = elapsed.Milliseconds()
		if e.store != nil {
			if err := e.store.InsertCache(types.CacheRow{
				EncodedText:     string(input),
				DecodedText:     string(sol.Plaintext),
				Path:            sol.Path,
				Successful:      true,
				ExecutionTimeMS: sol.ElapsedMS,
			}); err != nil {
				log.Warnw("failed to persist cache row", "err", err)
			}
		}
		return sol, nil
	}

	if cfg.Timeout > 0 && elapsed >= cfg.Timeout {
		return types.Solution{}, types.ErrTimedOut
	}
	if ctx.Err() != nil {
		return types.Solution{}, types.ErrTimedOut
	}
	return types.Solution{}, types.ErrExhausted
}

// worker is one of the N goroutines of §5's "parallel worker threads
// expanding nodes, coordinated through a shared priority queue". Each
// iteration dequeues the single highest-priority node, consults the
// cache, runs every applicable decoder, classifies and enqueues
// children, and polls the cooperative cancellation flag between steps
// (§5 "Cancellation").
func (e *Engine) worker(ctx context.Context, cfg types.Configuration, queue *Queue, dedup *Dedup, result *sharedResult, inFlight *int64) error {
	for {
		if e.cancelled.Load() || ctx.Err() != nil {
			return nil
		}
		if cfg.Timeout > 0 && e.clock.Elapsed() >= cfg.Timeout {
			e.cancelled.Store(true) // §4.4 "checks elapsed() >= timeout between dequeues"
			return nil
		}

		node, ok := queue.Dequeue()
		if !ok {
			if atomic.LoadInt64(inFlight) == 0 {
				return nil // queue empty and nobody is about to refill it: exhausted
			}
			time.Sleep(time.Millisecond)
			continue
		}

		atomic.AddInt64(inFlight, 1)
		e.expand(ctx, cfg, node, queue, dedup, result)
		atomic.AddInt64(inFlight, -1)
	}
}

// expand runs every decoder against node.Text in popularity order,
// classifying and enqueueing each resulting candidate (§4.4 algorithm
// sketch body).
func (e *Engine) expand(ctx context.Context, cfg types.Configuration, node types.SearchNode, queue *Queue, dedup *Dedup, result *sharedResult) {
	if cached, ok := e.cacheHitNode(string(node.Text), node); ok {
		result.set(cached)
		e.cancelled.Store(true)
		return
	}

	if node.Depth >= cfg.MaxDepth {
		return
	}

	lastTags := lastDecoderTags(node)

	for _, d := range e.decoders.All() {
		if e.cancelled.Load() || ctx.Err() != nil {
			return
		}
		cr := d.Attempt(node.Text, e.checker)
		for _, childText := range cr.UnencryptedText {
			if e.cancelled.Load() {
				return
			}
			if !dedup.InsertIfAbsent(childText) {
				continue // §4.4 dedup: skip already-seen candidate text
			}

			step := cr
			step.Input = node.Text

			result1 := e.checker.Classify(childText)
			if result1.IsIdentified {
				if skip, _ := e.failedUnder(string(childText), result1.CheckerName); skip {
					// §4.4 "Early skip": may still be expanded further,
					// just not accepted as terminal.
				} else if e.confirmHuman(result1) {
					child := node.Child(childText, step, 0)
					result.set(types.Solution{Plaintext: childText, Path: child.Path})
					e.cancelled.Store(true)
					return
				}
			}

			score := e.scorer.Score(descriptorPopularity(d), node.Depth+1, childText, d.Identify().Tags, lastTags)
			child := node.Child(childText, step, score)
			queue.Enqueue(child)
		}
	}
}

func descriptorPopularity(d types.Decoder) float64 {
	return d.Identify().Popularity
}

func lastDecoderTags(node types.SearchNode) []string {
	if len(node.Path) == 0 {
		return nil
	}
	return node.Path[len(node.Path)-1].Tags
}

func (e *Engine) confirmHuman(result types.CheckResult) bool {
	if e.human == nil {
		return true
	}
	return e.human.Confirm(result)
}

func (e *Engine) failedUnder(plaintext, checkerName string) (bool, error) {
	if e.failed == nil {
		return false, nil
	}
	return e.failed.IsFailedUnder(plaintext, checkerName)
}

func (e *Engine) cacheHit(encodedText string) (types.Solution, bool) {
	if e.store == nil {
		return types.Solution{}, false
	}
	row, ok, err := e.store.ReadCache(encodedText)
	if err != nil {
		logging.Get(logging.CategoryStore).Warnw("cache read failed, continuing without cache", "err", err)
		return types.Solution{}, false
	}
	if !ok || !row.Successful {
		return types.Solution{}, false
	}
	return types.Solution{Plaintext: types.Text(row.DecodedText), Path: row.Path}, true
}

func (e *Engine) cacheHitNode(encodedText string, node types.SearchNode) (types.Solution, bool) {
	sol, ok := e.cacheHit(encodedText)
	if !ok {
		return types.Solution{}, false
	}
	// Graft the path already walked to reach this node onto the cached
	// suffix, so the returned path still reflects how the engine itself
	// got here (§3 prefix-closed path invariant).
	full := make([]types.CrackResult, 0, len(node.Path)+len(sol.Path))
	full = append(full, node.Path...)
	full = append(full, sol.Path...)
	sol.Path = full
	return sol, true
}

// sharedResult is the single-winner slot multiple workers race to fill
// (§5 "The first worker to observe is_identified == true && human ==
// yes for any candidate wins").
type sharedResult struct {
	mu  sync.Mutex
	sol types.Solution
	has bool
}

func (r *sharedResult) set(sol types.Solution) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.has {
		return
	}
	r.sol = sol
	r.has = true
}

func (r *sharedResult) get() (types.Solution, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sol, r.has
}
