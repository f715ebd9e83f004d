package pixfmt

import "image"

// PlaneSize returns the number of bytes plane i of a width×height image
// occupies. The sample count is computed exactly from span and
// subsampling; the bit total is rounded up to whole bytes.
func (f PixelFormat) PlaneSize(i, width, height int) uint {
	p := f.planes[i]
	cols := Whole(width).Div(Whole(p.span).Mul(p.sub.X))
	rows := Whole(height).Div(p.sub.Y)
	bits := cols.Mul(rows).Mul(Whole(p.BitsPerSample()))
	return uint((bits.Num + bits.Den*8 - 1) / (bits.Den * 8))
}

// FrameSize returns the number of bytes a width×height image occupies in
// this format, summed over all planes.
func (f PixelFormat) FrameSize(width, height int) uint {
	var total uint
	for i := range f.planes {
		total += f.PlaneSize(i, width, height)
	}
	return total
}

// SubsampleRatio maps an 8-bit 3-plane y/u/v format onto the standard
// library's chroma subsample ratios. It reports false for formats that are
// not planar YUV or whose ratio has no image package equivalent.
func (f PixelFormat) SubsampleRatio() (image.YCbCrSubsampleRatio, bool) {
	chroma, ok := f.yuvChroma()
	if !ok {
		return 0, false
	}
	switch chroma {
	case Sub(1, 1):
		return image.YCbCrSubsampleRatio444, true
	case Sub(1, 2):
		return image.YCbCrSubsampleRatio440, true
	case Sub(2, 1):
		return image.YCbCrSubsampleRatio422, true
	case Sub(2, 2):
		return image.YCbCrSubsampleRatio420, true
	case Sub(4, 1):
		return image.YCbCrSubsampleRatio411, true
	case Sub(4, 2):
		return image.YCbCrSubsampleRatio410, true
	default:
		return 0, false
	}
}
