package marionette

import "sort"

// Playback engine. Every play operation returns a *Signal that resolves when
// the invocation completes:
//
//   - a one-shot clip's signal resolves on its natural completion (or on an
//     explicit stop before that);
//   - a looping clip never completes naturally, so its signal resolves only
//     on explicit stop;
//   - fan-out joins (PlayBase, PlayState) resolve when every NON-LOOPING
//     member has completed; looping members are excluded from the join,
//     since waiting on them would wait forever.
//
// Play operations are idempotent: requesting a clip that is already playing
// is success, not an error, and issues nothing to the runtime.

// IsClipPlaying reports whether the clip (by its base-stripped form) is
// currently occupying a track on the rig. Bookkeeping is authoritative once a
// clip has been played through this stage; as a fallback the runtime's track
// 0 content is consulted for clips started elsewhere.
func (s *Stage) IsClipPlaying(rigID, rawName string) bool {
	base, _ := DecodeClipName(rawName)
	return s.isPlaying(rigID, base)
}

func (s *Stage) isPlaying(rigID, base string) bool {
	if s.tracks.has(rigID, base) {
		return true
	}
	// Once a base has been played through the stage, bookkeeping alone
	// decides. Runtimes may keep a completed clip as the track's current
	// content (holding the final pose) until the track is replaced, so the
	// fallback would otherwise refuse every replay.
	if s.played[rigID][base] {
		return false
	}
	if raw, ok := s.runtime.CurrentTrackClip(rigID, 0); ok {
		current, _ := DecodeClipName(raw)
		return current == base
	}
	return false
}

// PlayClip starts a raw clip on the rig, allocating the next free track.
// Unknown rigs resolve immediately with a diagnostic, never an error.
func (s *Stage) PlayClip(rigID, rawName string) *Signal {
	return s.playClip(rigID, rawName, s.tracks.nextTrack(rigID))
}

// PlayClipOnTrack is PlayClip with an explicit track index.
func (s *Stage) PlayClipOnTrack(rigID, rawName string, track int) *Signal {
	return s.playClip(rigID, rawName, track)
}

func (s *Stage) playClip(rigID, rawName string, track int) *Signal {
	if _, ok := s.rigs[rigID]; !ok {
		diagf("play %q: rig %q not found", rawName, rigID)
		return resolvedSignal()
	}
	base, mods := DecodeClipName(rawName)
	if s.isPlaying(rigID, base) {
		return resolvedSignal()
	}

	s.runtime.SetTrack(rigID, track, rawName, mods.Loop)
	s.tracks.reserve(rigID, base, track, mods.Loop)
	if s.played[rigID] == nil {
		s.played[rigID] = make(map[string]bool)
	}
	s.played[rigID][base] = true

	sig := newSignal()
	rigPending := s.pending[rigID]
	if rigPending == nil {
		rigPending = make(map[string]*pendingPlay)
		s.pending[rigID] = rigPending
	}
	rigPending[base] = &pendingPlay{
		signal: sig,
		raw:    rawName,
		next:   mods.Next,
		loop:   mods.Loop,
	}
	return sig
}

// onTrackComplete is the stage's single completion listener per rig,
// installed at registration. It releases bookkeeping, resolves the pending
// signal, reports to the sink, and fans out any chained-next base name.
func (s *Stage) onTrackComplete(rigID string, track int, rawName string) {
	base, _ := DecodeClipName(rawName)
	p := s.pending[rigID][base]
	if p == nil {
		return
	}
	delete(s.pending[rigID], base)
	s.tracks.release(rigID, base)
	if s.sink != nil {
		s.sink.EmitPlayback(PlaybackEvent{RigID: rigID, Clip: rawName, Base: base, Track: track})
	}
	p.signal.resolve()
	if p.next != "" {
		s.PlayBase(p.next)
	}
}

// PlayBase fans a base animation out across every rig that exposes it and
// joins the results: the returned signal resolves once every non-looping
// fan-out member has completed. Unknown bases resolve immediately with a
// diagnostic.
func (s *Stage) PlayBase(base string) *Signal {
	owners := s.registry.lookup(base)
	if len(owners) == 0 {
		diagf("play base %q: no rig exposes it", base)
		return resolvedSignal()
	}

	// Fan-out order across rigs is unspecified by contract; sorting keeps it
	// reproducible.
	rigIDs := make([]string, 0, len(owners))
	for rigID := range owners {
		rigIDs = append(rigIDs, rigID)
	}
	sort.Strings(rigIDs)

	var waits []*Signal
	for _, rigID := range rigIDs {
		for _, raw := range owners[rigID] {
			sig := s.PlayClip(rigID, raw)
			if _, mods := DecodeClipName(raw); mods.Loop {
				continue
			}
			waits = append(waits, sig)
		}
	}
	return Join(waits...)
}

// PlayState plays every member base of a named state in concert and joins
// the results one level higher: the signal resolves when every member's
// fan-out has completed. Unknown states resolve immediately with a
// diagnostic.
func (s *Stage) PlayState(state string) *Signal {
	members := s.registry.membersOf(state)
	if len(members) == 0 {
		diagf("play state %q: no members", state)
		return resolvedSignal()
	}
	waits := make([]*Signal, 0, len(members))
	for _, base := range members {
		waits = append(waits, s.PlayBase(base))
	}
	return Join(waits...)
}

// PlayQueue runs entries strictly sequentially: entry N+1 is not dispatched
// until entry N has fully completed. Entries carrying the state prefix go to
// PlayState, the rest to PlayBase. Empty or unresolvable entries are skipped
// with a diagnostic, never a queue abort.
func (s *Stage) PlayQueue(entries []string) *Signal {
	done := newSignal()
	s.runQueue(entries, 0, done)
	return done
}

func (s *Stage) runQueue(entries []string, start int, done *Signal) {
	for i := start; i < len(entries); i++ {
		name := entries[i]
		if name == "" {
			diagf("queue entry %d: empty, skipping", i)
			continue
		}
		var sig *Signal
		if IsStateName(name) {
			sig = s.PlayState(name)
		} else {
			sig = s.PlayBase(name)
		}
		if sig.Resolved() {
			continue
		}
		next := i + 1
		sig.OnResolve(func() {
			s.runQueue(entries, next, done)
		})
		return
	}
	done.resolve()
}

// StopClip clears the clip's track, releases bookkeeping, and resolves the
// clip's pending completion signal so no awaiter hangs on a clip that will
// never finish. Stopping a clip that is not playing is a no-op.
func (s *Stage) StopClip(rigID, rawName string) {
	base, _ := DecodeClipName(rawName)
	s.stopBase(rigID, base)
}

func (s *Stage) stopBase(rigID, base string) {
	track, ok := s.tracks.trackOf(rigID, base)
	if !ok {
		return
	}
	s.runtime.ClearTrack(rigID, track)
	s.tracks.release(rigID, base)
	if p := s.pending[rigID][base]; p != nil {
		delete(s.pending[rigID], base)
		p.signal.resolve()
	}
}

// StopAll stops every playing clip on every rig. Safe on an already-silent
// stage.
func (s *Stage) StopAll() {
	for _, rigID := range s.order {
		for base := range s.tracks.entries(rigID) {
			s.stopBase(rigID, base)
		}
	}
}
