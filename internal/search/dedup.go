package search

import (
	"hash/fnv"
	"sync"

	"github.com/RenTrieu/Ares/internal/types"
)

// Dedup is the concurrent "seen" set of §4.4/§5: insert-returns-bool
// semantics over hashed candidate text, so a decoder chain can never
// cycle (Base64 -> Base64^-1 -> Base64, §4.4 algorithm sketch). A plain
// mutex-guarded map is used rather than sync.Map: the access pattern is
// write-heavy with no long-lived read-mostly phase, which is exactly the
// case stdlib's sync.Map docs call out as not a good fit.
type Dedup struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
}

// NewDedup returns an empty Dedup set.
func NewDedup() *Dedup {
	return &Dedup{seen: make(map[uint64]struct{})}
}

// InsertIfAbsent hashes text and returns true if it was newly inserted
// (i.e. not previously seen), false if it was already present.
func (d *Dedup) InsertIfAbsent(text types.Text) bool {
	h := hashText(text)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[h]; ok {
		return false
	}
	d.seen[h] = struct{}{}
	return true
}

// Len reports how many distinct candidates have been seen.
func (d *Dedup) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func hashText(text types.Text) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	return h.Sum64()
}
