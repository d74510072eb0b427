package ggfx

// blurSingleChannel softens an 8-bit alpha buffer in place.
//
// Every row is passed through a 3-tap running average repetitions times,
// then every column is. Repeated box passes converge on a Gaussian, so
// 2*r repetitions give a blur of roughly radius r. Buffers narrower or
// shorter than 3 pixels are left untouched.
func blurSingleChannel(data []byte, width, height, stride, repetitions int) {
	if width < 3 || height < 3 || repetitions <= 0 {
		return
	}

	for y := 0; y < height; y++ {
		row := data[y*stride:]
		for i := 0; i < repetitions; i++ {
			blurTriplets(row, width, 1)
		}
	}

	for x := 0; x < width; x++ {
		col := data[x:]
		for i := 0; i < repetitions; i++ {
			blurTriplets(col, height, stride)
		}
	}
}

// blurTriplets replaces each of the num samples spaced delta apart with the
// rounded mean of itself and its neighbours. The ends average over the two
// samples they have, divided by three, which lets the edges fade out.
func blurTriplets(d []byte, num, delta int) {
	last := uint32(d[0])
	d[0] = byte((uint32(d[0]) + uint32(d[delta]) + 1) / 3)

	i := delta
	for n := num - 2; n > 0; n-- {
		next := uint32(d[i+delta])
		v := uint32(d[i])
		d[i] = byte((last + v + next + 1) / 3)
		last = v
		i += delta
	}

	d[i] = byte((last + uint32(d[i]) + 1) / 3)
}

// blurImage blurs a single-channel image with 2*radius repetitions.
func blurImage(img *Image, radius int) {
	if img.Format() != FormatSingleChannel {
		return
	}
	bd := img.BitmapData(ReadWrite)
	blurSingleChannel(bd.Data, bd.Width, bd.Height, bd.Stride, 2*radius)
}
