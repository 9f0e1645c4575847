// Package marionette composes and drives multiple independently-authored
// skeletal-animation rigs into one coherent animated scene.
//
// Marionette does not render or tick animations itself; that belongs to the
// skeletal runtime behind the [SkeletalRuntime] interface. It decides what
// plays, on which track, in what order, and how rigs compose: it resolves
// which rig owns which named clip, allocates playback tracks, interprets
// encoded per-clip behavior modifiers (loop, speed, chained-next), groups
// clips into named states that play in concert, and wires rigs, text nodes,
// and scrolling tile nodes into a nested composition tree via naming
// conventions on attachment sockets.
//
// # Quick start
//
// Everything hangs off a [Stage], which owns the rigs and all orchestration
// state:
//
//	stage := marionette.NewStage(runtime)
//	stage.RegisterRig(marionette.NewRigInstance("root",
//		[]string{"walk_loop", "wave", "state_intro_flash"},
//		[]string{"spine_head", "text_title", "tile_h_clouds"},
//	))
//	stage.RegisterRig(headRig)
//	stage.BuildComposition()
//
//	stage.PlayBase("walk").OnResolve(func() {
//		stage.PlayState("state_intro")
//	})
//
// The renderer walks [Stage.Roots] to draw, and the game loop calls
// [Stage.Update] each frame to advance tile scrolling.
//
// # Clip names
//
// A raw clip name is a base name followed by behavior modifiers:
// "walk_loop_next_idle" is the base "walk", looping, chaining into the base
// "idle" on completion. Base names prefixed "state_" join the state named by
// the prefix and the following token. See [DecodeClipName].
//
// # Completion signals
//
// Every play operation returns a [Signal] that resolves when the invocation
// completes; [Join] composes them. [Stage.PlayQueue] sequences whole states
// and base animations strictly one after another.
//
// # Asset ingestion
//
// [GroupAssets] groups raw asset descriptors into skeleton/atlas/texture
// triples; [Stage.IngestManifest] loads a YAML manifest through an
// [AssetResolver] and [RigFactory], and [Watcher] re-supplies changed files
// from disk in authoring mode via [Stage.IngestFiles].
package marionette
