package ggfx

// ImageEffect renders an image into a Graphics with some effect applied.
//
// scaleFactor converts the effect's pixel sizes to the resolution of img,
// and alpha is the overall opacity the result is drawn with.
type ImageEffect interface {
	ApplyEffect(img *Image, g *Graphics, scaleFactor, alpha float64)
}

// DropShadowEffect draws an image with a drop shadow behind it.
// The shadow parameters can be changed between uses.
type DropShadowEffect struct {
	shadow DropShadow
}

var _ ImageEffect = (*DropShadowEffect)(nil)

// NewDropShadowEffect creates an effect casting the given shadow.
func NewDropShadowEffect(shadow DropShadow) *DropShadowEffect {
	return &DropShadowEffect{shadow: shadow}
}

// SetShadowProperties replaces the shadow.
func (e *DropShadowEffect) SetShadowProperties(shadow DropShadow) {
	e.shadow = shadow
}

// ShadowProperties returns the shadow as configured, before scaling.
func (e *DropShadowEffect) ShadowProperties() DropShadow {
	return e.shadow
}

// ApplyEffect draws the shadow of img, scaled by scaleFactor, then img
// itself on top. Both are drawn with the given alpha.
//
// A positive radius never scales below 1 pixel.
func (e *DropShadowEffect) ApplyEffect(img *Image, g *Graphics, scaleFactor, alpha float64) {
	s := e.scaled(scaleFactor, alpha)
	s.DrawForImage(g, img)

	g.SaveState()
	g.SetOpacity(alpha)
	g.DrawImageAt(img, 0, 0, false)
	g.RestoreState()
}

// scaled returns the shadow adapted to a render scale and opacity.
func (e *DropShadowEffect) scaled(scaleFactor, alpha float64) DropShadow {
	s := e.shadow
	s.Radius = roundToInt(float64(e.shadow.Radius) * scaleFactor)
	if e.shadow.Radius > 0 && s.Radius < 1 {
		s.Radius = 1
	}
	s.Color = s.Color.WithMultipliedAlpha(alpha)
	s.Offset.X = roundToInt(float64(s.Offset.X) * scaleFactor)
	s.Offset.Y = roundToInt(float64(s.Offset.Y) * scaleFactor)
	return s
}
