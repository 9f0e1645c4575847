package marionette

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Conversion to a renderer's native format is the renderer's concern.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default text tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and scroll speeds.
type Vec2 struct {
	X, Y float64
}

// NodeType distinguishes composition behavior for a Node.
type NodeType uint8

const (
	NodeTypeRig  NodeType = iota // wraps a RigInstance
	NodeTypeText                 // renders a TextBlock
	NodeTypeTile                 // renders a scrolling TileStrip
)

// SocketKind classifies an attachment socket by its naming convention.
// Classification happens once when a rig is ingested; nothing downstream
// re-inspects socket name strings.
type SocketKind uint8

const (
	SocketPlain    SocketKind = iota // no marker; takes no part in composition
	SocketChildRig                   // "spine_<rigID>": attach the named child rig
	SocketText                       // "text_<name>": attach a fresh TextNode
	SocketTileH                      // "tile_h_<name>": TileNode scrolling horizontally
	SocketTileV                      // "tile_v_<name>": TileNode scrolling vertically
	SocketTileBoth                   // "tile_hv_<name>" / "tile_vh_<name>": both axes
)

// TextAlign controls horizontal text alignment within a TextBlock.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)
