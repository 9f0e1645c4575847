package marionette

// trackSet is the per-rig playback bookkeeping: which base clip names occupy
// which track, split into one-shot and looping sets.
//
// Invariant: a track index never appears in both maps at once. Indices are
// allocated as |active| + |looping| at assignment time, so simultaneously
// playing clips always hold pairwise-distinct tracks.
type trackSet struct {
	active  map[string]int // one-shot clips: base name -> track index
	looping map[string]int // looping clips: base name -> track index
}

// trackBook holds track bookkeeping for every rig, keyed by rigID.
// Mutated exclusively by the playback engine on a single logical thread.
type trackBook struct {
	rigs map[string]*trackSet
}

func newTrackBook() *trackBook {
	return &trackBook{rigs: make(map[string]*trackSet)}
}

func (b *trackBook) set(rigID string) *trackSet {
	ts := b.rigs[rigID]
	if ts == nil {
		ts = &trackSet{
			active:  make(map[string]int),
			looping: make(map[string]int),
		}
		b.rigs[rigID] = ts
	}
	return ts
}

// nextTrack returns the track index the next clip on this rig should use.
func (b *trackBook) nextTrack(rigID string) int {
	if ts, ok := b.rigs[rigID]; ok {
		return len(ts.active) + len(ts.looping)
	}
	return 0
}

// reserve records a clip as occupying a track. Callers must check has first;
// reserving an already-reserved clip is a caller error.
func (b *trackBook) reserve(rigID, base string, track int, looping bool) {
	ts := b.set(rigID)
	if looping {
		ts.looping[base] = track
		return
	}
	ts.active[base] = track
}

// release frees a clip's track, whichever map holds it. No-op for clips that
// are not tracked.
func (b *trackBook) release(rigID, base string) {
	ts, ok := b.rigs[rigID]
	if !ok {
		return
	}
	delete(ts.active, base)
	delete(ts.looping, base)
}

// has reports whether the clip occupies a track on the rig.
func (b *trackBook) has(rigID, base string) bool {
	ts, ok := b.rigs[rigID]
	if !ok {
		return false
	}
	if _, ok := ts.active[base]; ok {
		return true
	}
	_, ok = ts.looping[base]
	return ok
}

// trackOf returns the track a clip occupies, false if it is not tracked.
func (b *trackBook) trackOf(rigID, base string) (int, bool) {
	ts, ok := b.rigs[rigID]
	if !ok {
		return 0, false
	}
	if t, ok := ts.active[base]; ok {
		return t, true
	}
	t, ok := ts.looping[base]
	return t, ok
}

// entries returns every tracked (base, track) pair for a rig. Used by stop
// fan-out; order is unspecified.
func (b *trackBook) entries(rigID string) map[string]int {
	ts, ok := b.rigs[rigID]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(ts.active)+len(ts.looping))
	for base, t := range ts.active {
		out[base] = t
	}
	for base, t := range ts.looping {
		out[base] = t
	}
	return out
}

// drop discards all bookkeeping for a rig.
func (b *trackBook) drop(rigID string) {
	delete(b.rigs, rigID)
}

// reset discards all bookkeeping.
func (b *trackBook) reset() {
	b.rigs = make(map[string]*trackSet)
}
