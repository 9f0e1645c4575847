package marionette

// SkeletalRuntime is the boundary to the external animation runtime that owns
// per-rig track playback, frame ticking, and completion events. Marionette
// decides what plays on which track; the runtime does the playing.
//
// Completion callbacks fire once per natural (non-looping) clip completion.
// Looping clips never complete naturally; they end only when their track is
// cleared.
type SkeletalRuntime interface {
	// SetTrack starts the raw clip on the rig's track, replacing whatever
	// the track held.
	SetTrack(rigID string, track int, rawClipName string, loop bool)

	// ClearTrack stops and empties the rig's track.
	ClearTrack(rigID string, track int)

	// OnTrackComplete registers fn to be called on each natural completion
	// of any track on the rig.
	OnTrackComplete(rigID string, fn func(track int, rawClipName string))

	// CurrentTrackClip reports the raw clip currently occupying the rig's
	// track, false if the track is empty.
	CurrentTrackClip(rigID string, track int) (string, bool)
}
