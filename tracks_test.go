package marionette

import "testing"

func TestNextTrackCountsBothSets(t *testing.T) {
	b := newTrackBook()
	if got := b.nextTrack("A"); got != 0 {
		t.Errorf("nextTrack on empty rig = %d, want 0", got)
	}
	b.reserve("A", "walk", 0, true)
	if got := b.nextTrack("A"); got != 1 {
		t.Errorf("nextTrack = %d, want 1", got)
	}
	b.reserve("A", "wave", 1, false)
	if got := b.nextTrack("A"); got != 2 {
		t.Errorf("nextTrack = %d, want 2", got)
	}
}

func TestTracksPerRigIndependent(t *testing.T) {
	b := newTrackBook()
	b.reserve("A", "walk", 0, false)
	if got := b.nextTrack("B"); got != 0 {
		t.Errorf("B's nextTrack = %d, want 0", got)
	}
}

func TestTrackIndicesPairwiseDistinct(t *testing.T) {
	b := newTrackBook()
	clips := []struct {
		base string
		loop bool
	}{
		{"walk", true}, {"wave", false}, {"blink", false}, {"glow", true},
	}
	for _, c := range clips {
		b.reserve("A", c.base, b.nextTrack("A"), c.loop)
	}

	seen := make(map[int]string)
	for base, track := range b.entries("A") {
		if prev, ok := seen[track]; ok {
			t.Fatalf("track %d assigned to both %q and %q", track, prev, base)
		}
		seen[track] = base
	}
	if len(seen) != len(clips) {
		t.Errorf("tracked clips = %d, want %d", len(seen), len(clips))
	}
}

func TestReleaseFreesTrackForReuse(t *testing.T) {
	b := newTrackBook()
	b.reserve("A", "walk", 0, false)
	b.reserve("A", "wave", 1, false)
	b.release("A", "walk")

	if got := b.nextTrack("A"); got != 1 {
		t.Errorf("nextTrack after release = %d, want 1", got)
	}
}

func TestReleaseUntrackedIsNoop(t *testing.T) {
	b := newTrackBook()
	b.release("A", "ghost") // must not panic
	b.reserve("A", "walk", 0, false)
	b.release("A", "ghost")
	if !b.has("A", "walk") {
		t.Error("unrelated release must not disturb tracked clips")
	}
}

func TestHasChecksBothSets(t *testing.T) {
	b := newTrackBook()
	b.reserve("A", "walk", 0, true)
	b.reserve("A", "wave", 1, false)

	if !b.has("A", "walk") || !b.has("A", "wave") {
		t.Error("has should see looping and active clips")
	}
	if b.has("A", "blink") {
		t.Error("has should be false for untracked clips")
	}
	if b.has("B", "walk") {
		t.Error("has should be false for unknown rigs")
	}
}

func TestTrackOf(t *testing.T) {
	b := newTrackBook()
	b.reserve("A", "walk", 3, true)

	if track, ok := b.trackOf("A", "walk"); !ok || track != 3 {
		t.Errorf("trackOf = (%d,%v), want (3,true)", track, ok)
	}
	if _, ok := b.trackOf("A", "ghost"); ok {
		t.Error("trackOf should miss untracked clips")
	}
}

func TestDropDiscardsRig(t *testing.T) {
	b := newTrackBook()
	b.reserve("A", "walk", 0, false)
	b.drop("A")
	if b.has("A", "walk") {
		t.Error("dropped rig should have no bookkeeping")
	}
	if got := b.nextTrack("A"); got != 0 {
		t.Errorf("nextTrack after drop = %d, want 0", got)
	}
}
