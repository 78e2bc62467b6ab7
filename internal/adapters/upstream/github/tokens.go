package github

import (
	"strings"
	"sync/atomic"
)

// Ring is a round-robin cursor over an immutable pool of access tokens.
// Current reads the token under the cursor without moving it; Advance
// bumps the cursor modulo pool size. The cursor is process-wide shared
// state: concurrent lookups may observe a token one step stale after a
// racing Advance, which is tolerable since tokens are interchangeable.
type Ring struct {
	tokens []string
	cur    atomic.Int32
}

// NewRing builds a Ring from a comma separated token list.
// Blank entries are dropped. An empty CSV yields an empty ring,
// which means unauthenticated requests (very low quota).
func NewRing(csv string) *Ring {
	r := &Ring{}
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			r.tokens = append(r.tokens, t)
		}
	}
	return r
}

// Current returns the token under the cursor, or "" for an empty ring
func (r *Ring) Current() string {
	if len(r.tokens) == 0 {
		return ""
	}
	return r.tokens[int(r.cur.Load())%len(r.tokens)]
}

// Advance moves the cursor one slot forward, wrapping at the end.
// A single-token ring wraps to itself.
func (r *Ring) Advance() {
	if len(r.tokens) == 0 {
		return
	}
	next := (r.cur.Add(1)) % int32(len(r.tokens))
	r.cur.Store(next)
}

// Size reports the number of tokens in the pool
func (r *Ring) Size() int { return len(r.tokens) }
