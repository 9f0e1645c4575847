package marionette

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Node is a composition tree element. A single flat struct is used for all
// node types; the Type field selects which of the per-type payloads is live.
// The renderer walks this tree read-only; marionette owns all mutation.
type Node struct {
	// Identity
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Marionette never reads these back; they exist for
	// the renderer and for tween helpers.
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	Alpha          float64
	Visible        bool

	// Rig payload (NodeTypeRig)
	Rig *RigInstance

	// Text payload (NodeTypeText)
	TextBlock *TextBlock

	// Tile payload (NodeTypeTile)
	Tile *TileStrip

	disposed bool
}

// TextBlock holds the content and style of a text node.
type TextBlock struct {
	Content string
	Style   TextStyle
}

// TextStyle describes how a TextBlock should be drawn.
type TextStyle struct {
	FontName string
	Size     float64
	Color    Color
	Align    TextAlign
}

// TileStrip is a scrolling tiled pattern. The Stage's per-frame updater
// advances Offset by Speed each Update; the renderer tiles Pattern across the
// node's bounds at the current offset.
type TileStrip struct {
	Pattern    *ebiten.Image // repeated image; may be assigned after wiring
	Horizontal bool          // scrolls along X
	Vertical   bool          // scrolls along Y
	Speed      Vec2          // pixels per second, per axis
	Offset     Vec2
}

// advance moves the scroll offset by dt seconds, wrapping on the pattern size
// when a pattern is assigned so offsets stay bounded.
func (t *TileStrip) advance(dt float64) {
	if t.Horizontal {
		t.Offset.X += t.Speed.X * dt
	}
	if t.Vertical {
		t.Offset.Y += t.Speed.Y * dt
	}
	if t.Pattern == nil {
		return
	}
	bounds := t.Pattern.Bounds()
	if w := float64(bounds.Dx()); w > 0 {
		t.Offset.X = wrapOffset(t.Offset.X, w)
	}
	if h := float64(bounds.Dy()); h > 0 {
		t.Offset.Y = wrapOffset(t.Offset.Y, h)
	}
}

func wrapOffset(v, span float64) float64 {
	for v >= span {
		v -= span
	}
	for v < 0 {
		v += span
	}
	return v
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Visible = true
}

// newRigNode creates the tree node owned by a RigInstance.
func newRigNode(rig *RigInstance) *Node {
	n := &Node{Name: rig.id, Type: NodeTypeRig, Rig: rig}
	nodeDefaults(n)
	return n
}

// NewTextNode creates a text node with the given content and style.
func NewTextNode(name, content string, style TextStyle) *Node {
	n := &Node{
		Name:      name,
		Type:      NodeTypeText,
		TextBlock: &TextBlock{Content: content, Style: style},
	}
	nodeDefaults(n)
	return n
}

// NewTileNode creates a scrolling tile node. horizontal/vertical select the
// scroll axes; speed applies to each selected axis.
func NewTileNode(name string, horizontal, vertical bool, speed float64) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeTile,
		Tile: &TileStrip{
			Horizontal: horizontal,
			Vertical:   vertical,
			Speed:      Vec2{X: speed, Y: speed},
		},
	}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("marionette: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("marionette: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("marionette: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildNamed returns the first direct child with the given name, nil if none.
func (n *Node) ChildNamed(name string) *Node {
	for _, child := range n.children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Rig = nil
	n.TextBlock = nil
	n.Tile = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
