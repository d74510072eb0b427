// Package blend implements the compositing arithmetic used by ggfx.
//
// All blend operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// SourceOverAlpha is SourceOver for single-channel targets.
// Formula: Sa + Da * (1 - Sa)
func SourceOverAlpha(sa, da byte) byte {
	return addClamp(sa, MulDiv255(da, 255-sa))
}

// Scale multiplies a premultiplied pixel by a coverage or opacity value.
func Scale(r, g, b, a, cov byte) (byte, byte, byte, byte) {
	if cov == 255 {
		return r, g, b, a
	}
	return MulDiv255(r, cov), MulDiv255(g, cov), MulDiv255(b, cov), MulDiv255(a, cov)
}
