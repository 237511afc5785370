package hexdraw

// CommandType identifies the kind of a draw record. The zero value is not
// a valid record type.
type CommandType uint8

const (
	CmdClear  CommandType = iota + 1 // Fill the whole target
	CmdRect                          // Filled rectangle in world space
	CmdHex                           // Filled or textured tile
	CmdBitmap                        // Sprite centred on a world point
	CmdLabel                         // Short text centred on a world point
)

var commandTypeNames = [...]string{
	CmdClear:  "Clear",
	CmdRect:   "Rect",
	CmdHex:    "Hex",
	CmdBitmap: "Bitmap",
	CmdLabel:  "Label",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if c != 0 && int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a decoded draw record. The set of implementations is closed.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	command()
}

// ClearCommand fills the whole target with Color.
type ClearCommand struct {
	Color Color
}

// RectCommand fills a Dim-sized rectangle centred on Base+Pos.
type RectCommand struct {
	Base  Vec2
	Pos   Vec2
	Dim   Vec2
	Color Color
}

// HexCommand fills the tile centred on Base+Pos. When Texture is set the
// tile is textured and Color, if not fully transparent, tints it.
type HexCommand struct {
	Base    Vec2
	Pos     Vec2
	Color   Color
	Texture *Bitmap
}

// BitmapCommand draws Bitmap centred on Base+Pos.
type BitmapCommand struct {
	Base   Vec2
	Pos    Vec2
	Bitmap *Bitmap
}

// LabelCommand draws Text centred on Base+Pos.
type LabelCommand struct {
	Base  Vec2
	Pos   Vec2
	Color Color
	Text  string
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// Type implements Command.
func (HexCommand) Type() CommandType { return CmdHex }

// Type implements Command.
func (BitmapCommand) Type() CommandType { return CmdBitmap }

// Type implements Command.
func (LabelCommand) Type() CommandType { return CmdLabel }

func (ClearCommand) command()  {}
func (RectCommand) command()   {}
func (HexCommand) command()    {}
func (BitmapCommand) command() {}
func (LabelCommand) command()  {}
