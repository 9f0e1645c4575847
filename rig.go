package marionette

import "strings"

// Socket is a named attachment point on a rig, classified once at ingestion.
// Kind and Arg carry everything the composition builder needs; nothing else
// ever re-parses the socket name.
type Socket struct {
	Name string     // raw socket name as authored
	Kind SocketKind // classification from the naming convention
	Arg  string     // payload after the marker: child rigID or node name
}

// RigInstance is a loaded skeletal-animation object: an opaque identity, its
// raw clip names, its classified attachment sockets, and the composition tree
// node it owns. Instances are owned exclusively by the Stage and destroyed on
// Reset or when their rigID is re-registered (replace-in-place).
type RigInstance struct {
	id        string
	clipNames []string
	sockets   []Socket
	node      *Node
	disposed  bool
}

// NewRigInstance creates a rig from the identity, raw clip names, and socket
// names reported by the skeletal runtime for a loaded skeleton.
func NewRigInstance(id string, clipNames, socketNames []string) *RigInstance {
	r := &RigInstance{
		id:        id,
		clipNames: append([]string(nil), clipNames...),
		sockets:   make([]Socket, 0, len(socketNames)),
	}
	for _, name := range socketNames {
		r.sockets = append(r.sockets, classifySocket(name))
	}
	r.node = newRigNode(r)
	return r
}

// ID returns the rig's opaque identity.
func (r *RigInstance) ID() string {
	return r.id
}

// ClipNames returns the rig's raw clip names. The returned slice MUST NOT be
// mutated by the caller.
func (r *RigInstance) ClipNames() []string {
	return r.clipNames
}

// Sockets returns the rig's classified sockets. The returned slice MUST NOT
// be mutated by the caller.
func (r *RigInstance) Sockets() []Socket {
	return r.sockets
}

// Node returns the composition tree node owned by this rig.
func (r *RigInstance) Node() *Node {
	return r.node
}

// IsDisposed returns true if the rig has been destroyed by the Stage.
func (r *RigInstance) IsDisposed() bool {
	return r.disposed
}

func (r *RigInstance) dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.node != nil {
		r.node.Dispose()
	}
}

// Socket name markers. The orientation of a tile socket is encoded in the
// marker itself; tile_hv and tile_vh are equivalent.
const (
	socketChildMarker  = "spine_"
	socketTextMarker   = "text_"
	socketTileHMarker  = "tile_h_"
	socketTileVMarker  = "tile_v_"
	socketTileHVMarker = "tile_hv_"
	socketTileVHMarker = "tile_vh_"
)

// classifySocket maps a socket name to its tagged classification. Names with
// no recognized marker are SocketPlain and take no part in composition.
func classifySocket(name string) Socket {
	s := Socket{Name: name, Kind: SocketPlain}
	switch {
	// Markers are disjoint (each ends with an underscore), so order is free.
	case strings.HasPrefix(name, socketTileHVMarker):
		s.Kind = SocketTileBoth
		s.Arg = name[len(socketTileHVMarker):]
	case strings.HasPrefix(name, socketTileVHMarker):
		s.Kind = SocketTileBoth
		s.Arg = name[len(socketTileVHMarker):]
	case strings.HasPrefix(name, socketTileHMarker):
		s.Kind = SocketTileH
		s.Arg = name[len(socketTileHMarker):]
	case strings.HasPrefix(name, socketTileVMarker):
		s.Kind = SocketTileV
		s.Arg = name[len(socketTileVMarker):]
	case strings.HasPrefix(name, socketTextMarker):
		s.Kind = SocketText
		s.Arg = name[len(socketTextMarker):]
	case strings.HasPrefix(name, socketChildMarker):
		s.Kind = SocketChildRig
		s.Arg = name[len(socketChildMarker):]
	}
	return s
}
