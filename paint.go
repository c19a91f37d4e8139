package mr

// Style selects whether a shape's interior, outline, or both are drawn.
type Style int

const (
	// StyleFill draws the shape's interior.
	StyleFill Style = iota
	// StyleStroke draws the shape's outline.
	StyleStroke
	// StyleFillAndStroke draws the interior, then the outline.
	StyleFillAndStroke
)

// StrokeCap specifies the shape of stroke endpoints.
// Declared for API completeness; the current stroke model draws
// per-segment bands without cap geometry.
type StrokeCap int

const (
	// StrokeCapButt specifies a flat stroke cap.
	StrokeCapButt StrokeCap = iota
	// StrokeCapRound specifies a rounded stroke cap.
	StrokeCapRound
	// StrokeCapSquare specifies a square stroke cap.
	StrokeCapSquare
)

// StrokeJoin specifies the shape of stroke joins.
// Declared for API completeness; the current stroke model draws
// per-segment bands without join geometry.
type StrokeJoin int

const (
	// StrokeJoinMiter specifies a sharp (mitered) join.
	StrokeJoinMiter StrokeJoin = iota
	// StrokeJoinRound specifies a rounded join.
	StrokeJoinRound
	// StrokeJoinBevel specifies a beveled join.
	StrokeJoinBevel
)

// Paint describes how a single draw call renders: color, fill or
// stroke style, stroke width, and the anti-alias flag. Paint is a
// value type copied per draw call.
type Paint struct {
	Color       Color
	Style       Style
	StrokeWidth float64
	Cap         StrokeCap
	Join        StrokeJoin
	AntiAlias   bool
}

// NewPaint returns a paint with default values: opaque black fill,
// stroke width 1, anti-aliasing enabled.
func NewPaint() Paint {
	return Paint{
		Color:       Black,
		Style:       StyleFill,
		StrokeWidth: 1,
		Cap:         StrokeCapButt,
		Join:        StrokeJoinMiter,
		AntiAlias:   true,
	}
}

// WithColor returns the paint with its color replaced.
func (p Paint) WithColor(c Color) Paint {
	p.Color = c
	return p
}

// WithStyle returns the paint with its style replaced.
func (p Paint) WithStyle(s Style) Paint {
	p.Style = s
	return p
}

// WithStrokeWidth returns the paint with its stroke width replaced.
func (p Paint) WithStrokeWidth(w float64) Paint {
	p.StrokeWidth = w
	return p
}

// WithAntiAlias returns the paint with anti-aliasing toggled.
func (p Paint) WithAntiAlias(aa bool) Paint {
	p.AntiAlias = aa
	return p
}
