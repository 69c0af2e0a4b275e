package geom

import "math"

// CornerRadii describes the rounding of the four corners of a rectangle.
// Setters clamp negative radii to zero instead of rejecting them.
type CornerRadii struct {
	topLeft     float64
	topRight    float64
	bottomRight float64
	bottomLeft  float64
}

func NewCornerRadii(topLeft, topRight, bottomRight, bottomLeft float64) *CornerRadii {
	return &CornerRadii{
		topLeft:     topLeft,
		topRight:    topRight,
		bottomRight: bottomRight,
		bottomLeft:  bottomLeft,
	}
}

func UniformCornerRadii(radius float64) *CornerRadii {
	return NewCornerRadii(radius, radius, radius, radius)
}

func clampRadius(v float64) float64 {
	return Clamp(0, math.MaxFloat64, v)
}

func (c *CornerRadii) TopLeft() float64     { return c.topLeft }
func (c *CornerRadii) TopRight() float64    { return c.topRight }
func (c *CornerRadii) BottomRight() float64 { return c.bottomRight }
func (c *CornerRadii) BottomLeft() float64  { return c.bottomLeft }

func (c *CornerRadii) SetTopLeft(v float64)     { c.topLeft = clampRadius(v) }
func (c *CornerRadii) SetTopRight(v float64)    { c.topRight = clampRadius(v) }
func (c *CornerRadii) SetBottomRight(v float64) { c.bottomRight = clampRadius(v) }
func (c *CornerRadii) SetBottomLeft(v float64)  { c.bottomLeft = clampRadius(v) }

func (c *CornerRadii) IsUniform() bool {
	return c.topLeft == c.topRight && c.topRight == c.bottomRight && c.bottomRight == c.bottomLeft
}

func (c *CornerRadii) String() string {
	return renderCornerRadii(c.topLeft, c.topRight, c.bottomRight, c.bottomLeft)
}
