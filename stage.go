package marionette

// PlaybackSink is the interface for optional ECS integration. When set on a
// Stage, clip completion events are forwarded to it.
type PlaybackSink interface {
	EmitPlayback(event PlaybackEvent)
}

// PlaybackEvent carries one natural clip completion for the ECS bridge.
type PlaybackEvent struct {
	RigID string
	Clip  string // raw clip name, as set on the track
	Base  string // modifier-stripped base name
	Track int
}

// DefaultTileScrollSpeed is the scroll speed, in pixels per second, given to
// tile nodes created by the composition builder. Adjust per node afterwards
// via Node.Tile.
const DefaultTileScrollSpeed = 60.0

// pendingPlay is one in-flight clip invocation awaiting completion.
type pendingPlay struct {
	signal *Signal
	raw    string
	next   string // chained base name, "" if none
	loop   bool
}

// Stage owns the whole orchestration state: every rig instance, the
// animation registry and state groups derived from them, track bookkeeping,
// in-flight completion signals, and the composition tree. All state lives
// here and is passed by method receiver; there are no package-level
// registries.
//
// Stage is single-threaded: every method must be called from the same
// goroutine that drives the skeletal runtime's frame tick.
type Stage struct {
	runtime  SkeletalRuntime
	rigs     map[string]*RigInstance
	order    []string // registration order; keeps fan-out and roots deterministic
	registry *animationRegistry
	tracks   *trackBook
	pending  map[string]map[string]*pendingPlay // rigID -> base -> in-flight
	played   map[string]map[string]bool         // rigID -> bases played through this stage
	hooked   map[string]bool                    // rigIDs with a runtime completion listener

	// Composition output
	roots    []*Node
	composed []*Node      // text/tile nodes created by the last build
	tiles    []*TileStrip // registered with the per-frame scroll updater

	sink  PlaybackSink
	debug bool
}

// NewStage creates an empty stage driven by the given skeletal runtime.
func NewStage(runtime SkeletalRuntime) *Stage {
	return &Stage{
		runtime:  runtime,
		rigs:     make(map[string]*RigInstance),
		registry: newAnimationRegistry(),
		tracks:   newTrackBook(),
		pending:  make(map[string]map[string]*pendingPlay),
		played:   make(map[string]map[string]bool),
		hooked:   make(map[string]bool),
	}
}

// RegisterRig adds a rig to the stage and indexes its clips. Registering a
// rigID that is already present replaces it in place: the prior instance's
// tracks are cleared, its in-flight signals resolved, its registry and state
// group entries removed, and its node disposed before the new instance takes
// over.
func (s *Stage) RegisterRig(rig *RigInstance) {
	if rig == nil {
		panic("marionette: cannot register nil rig")
	}
	id := rig.ID()
	if old, ok := s.rigs[id]; ok {
		s.destroyRig(old)
	} else {
		s.order = append(s.order, id)
	}
	s.rigs[id] = rig
	s.registry.register(id, rig.ClipNames())
	if !s.hooked[id] {
		s.hooked[id] = true
		s.runtime.OnTrackComplete(id, func(track int, raw string) {
			s.onTrackComplete(id, track, raw)
		})
	}
}

// destroyRig releases everything one rig holds: runtime tracks, bookkeeping,
// pending signals (resolved, per the stop policy), registry entries, and its
// node subtree.
func (s *Stage) destroyRig(old *RigInstance) {
	id := old.ID()
	for _, track := range s.tracks.entries(id) {
		s.runtime.ClearTrack(id, track)
	}
	s.tracks.drop(id)
	for _, p := range s.pending[id] {
		p.signal.resolve()
	}
	delete(s.pending, id)
	delete(s.played, id)
	s.registry.remove(id)
	// Builder-created text/tile children die with their rig; child rig nodes
	// are owned by other rigs and must survive, so they are only detached.
	if old.node != nil {
		s.pruneComposed(old.node)
		old.node.RemoveChildren()
		for i, root := range s.roots {
			if root == old.node {
				s.roots = append(s.roots[:i], s.roots[i+1:]...)
				break
			}
		}
	}
	old.dispose()
}

// pruneComposed disposes builder-created children of the given rig node and
// drops them from the composed and tile lists, so an orphaned tile never keeps
// advancing in Update.
func (s *Stage) pruneComposed(node *Node) {
	kept := s.composed[:0]
	for _, n := range s.composed {
		if n.Parent != node {
			kept = append(kept, n)
			continue
		}
		if n.Tile != nil {
			for i, tile := range s.tiles {
				if tile == n.Tile {
					s.tiles = append(s.tiles[:i], s.tiles[i+1:]...)
					break
				}
			}
		}
		n.Dispose()
	}
	s.composed = kept
}

// Rig returns the registered rig with the given ID.
func (s *Stage) Rig(id string) (*RigInstance, bool) {
	rig, ok := s.rigs[id]
	return rig, ok
}

// RigIDs returns every registered rigID in registration order.
// The returned slice MUST NOT be mutated by the caller.
func (s *Stage) RigIDs() []string {
	return s.order
}

// ClipOwners returns the rigID -> raw clip names mapping for a base name,
// empty for unknown bases. The returned map MUST NOT be mutated.
func (s *Stage) ClipOwners(base string) map[string][]string {
	return s.registry.lookup(base)
}

// StateMembers returns the ordered member base names of a state, empty for
// unknown states. The returned slice MUST NOT be mutated.
func (s *Stage) StateMembers(state string) []string {
	return s.registry.membersOf(state)
}

// Reset destroys every rig, resolves all in-flight signals, and tears down
// the composition tree wholesale. The stage is reusable afterwards.
func (s *Stage) Reset() {
	for _, id := range s.order {
		s.destroyRig(s.rigs[id])
	}
	s.rigs = make(map[string]*RigInstance)
	s.order = nil
	s.registry.reset()
	s.tracks.reset()
	s.roots = nil
	s.composed = nil
	s.tiles = nil
}

// Update advances the per-frame tile scroll updater by dt seconds. Call once
// per frame from the game loop.
func (s *Stage) Update(dt float64) {
	for _, tile := range s.tiles {
		tile.advance(dt)
	}
}

// SetPlaybackSink sets the optional ECS bridge for completion events.
func (s *Stage) SetPlaybackSink(sink PlaybackSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access in tree operations panics with a descriptive message.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// --- Composition graph builder ---

// BuildComposition wires every rig's classified sockets into the composition
// tree: child-rig sockets attach the named rig's node (silently skipped when
// the rig is absent, since assets may load out of order), text sockets attach a
// fresh TextNode, tile sockets attach a TileNode registered with the scroll
// updater. Rigs left without a parent become scene roots.
//
// Building is idempotent: each call tears down the previous wiring first, so
// running it twice over the same rig set produces the same edges.
func (s *Stage) BuildComposition() {
	s.teardownComposition()
	for _, id := range s.order {
		rig := s.rigs[id]
		for _, sock := range rig.Sockets() {
			switch sock.Kind {
			case SocketChildRig:
				child, ok := s.rigs[sock.Arg]
				if !ok {
					diagf("socket %q on rig %q: child rig %q not loaded, skipping", sock.Name, id, sock.Arg)
					continue
				}
				if isAncestor(child.node, rig.node) {
					diagf("socket %q on rig %q: attaching %q would create a cycle, skipping", sock.Name, id, sock.Arg)
					continue
				}
				rig.node.AddChild(child.node)
			case SocketText:
				text := NewTextNode(sock.Arg, "", TextStyle{Color: ColorWhite})
				rig.node.AddChild(text)
				s.composed = append(s.composed, text)
			case SocketTileH:
				s.attachTile(rig, sock, true, false)
			case SocketTileV:
				s.attachTile(rig, sock, false, true)
			case SocketTileBoth:
				s.attachTile(rig, sock, true, true)
			}
		}
	}
	s.roots = s.roots[:0]
	for _, id := range s.order {
		if node := s.rigs[id].node; node.Parent == nil {
			s.roots = append(s.roots, node)
		}
	}
}

func (s *Stage) attachTile(rig *RigInstance, sock Socket, horizontal, vertical bool) {
	tile := NewTileNode(sock.Arg, horizontal, vertical, DefaultTileScrollSpeed)
	rig.node.AddChild(tile)
	s.composed = append(s.composed, tile)
	s.tiles = append(s.tiles, tile.Tile)
}

// teardownComposition disposes builder-created nodes and detaches every
// parent/child edge between rig nodes.
func (s *Stage) teardownComposition() {
	for _, n := range s.composed {
		n.Dispose()
	}
	s.composed = nil
	s.tiles = nil
	for _, id := range s.order {
		s.rigs[id].node.RemoveChildren()
	}
	s.roots = nil
}

// Roots returns the composition tree roots: every rig node that no socket
// claimed as a child. Valid after BuildComposition; the renderer draws the
// scene by walking these. The returned slice MUST NOT be mutated.
func (s *Stage) Roots() []*Node {
	return s.roots
}
