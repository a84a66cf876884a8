package checkers

import (
	"sync"

	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/timer"
	"github.com/RenTrieu/Ares/internal/types"
)

// Prompter is the interface the core calls into for a human yes/no
// confirmation (§4.2 "Human Checker"). It is implemented at the CLI edge
// (cmd/arescli, via bubbletea) — the core itself has no notion of a
// terminal.
type Prompter interface {
	Confirm(result types.CheckResult) (yes bool, err error)
}

// FailedDecodeRecorder is the narrow slice of the Knowledge Store's API
// the human checker needs: recording a human's "no" so the string is
// never re-offered under the same checker (§4.3 insert_failed_decode).
type FailedDecodeRecorder interface {
	InsertFailedDecode(plaintext string, result types.CheckResult) error
}

// Human gates a positive CheckResult behind interactive confirmation
// when enabled. It deduplicates prompts by (description, text) pair
// within the process (§4.2) and pauses the shared Clock for the
// duration of the prompt (§4.2, §4.5).
type Human struct {
	enabled  bool
	apiMode  bool
	prompter Prompter
	store    FailedDecodeRecorder
	clock    *timer.Clock

	mu     sync.Mutex
	seen   map[string]bool
}

// NewHuman builds the human checker gate. If enabled is false or apiMode
// is true, Confirm always accepts without prompting (§4.2
// "human_checker_on && !api_mode").
func NewHuman(enabled, apiMode bool, prompter Prompter, store FailedDecodeRecorder, clock *timer.Clock) *Human {
	return &Human{
		enabled:  enabled,
		apiMode:  apiMode,
		prompter: prompter,
		store:    store,
		clock:    clock,
		seen:     make(map[string]bool),
	}
}

// Confirm returns true if result should be treated as a final accepted
// answer. A "no" answer records a failed_decodes row and returns false
// so the caller continues the search as if the checker had returned
// negative (§4.2).
func (h *Human) Confirm(result types.CheckResult) bool {
	if !h.enabled || h.apiMode || h.prompter == nil {
		return true
	}

	key := result.CheckerDesc + "\x00" + string(result.Text)
	h.mu.Lock()
	if h.seen[key] {
		h.mu.Unlock()
		// Already prompted for this exact (description, text) pair this
		// process (§8 boundary case): let the search continue as if
		// accepted, without prompting again.
		return true
	}
	h.seen[key] = true
	h.mu.Unlock()

	h.clock.Pause()
	yes, err := h.prompter.Confirm(result)
	h.clock.Resume()

	if err != nil {
		// PromptIOError: treated as implicit "no" (§7).
		logging.Get(logging.CategoryCheckers).Warnw("human prompt failed, treating as no", "err", err)
		yes = false
	}

	if !yes && h.store != nil {
		if err := h.store.InsertFailedDecode(string(result.Text), result); err != nil {
			logging.Get(logging.CategoryCheckers).Warnw("failed to record failed decode", "err", err)
		}
	}
	return yes
}
