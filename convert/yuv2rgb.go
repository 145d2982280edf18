package convert

// Flag selects the colorspace standard and value range for a YUV to RGB
// conversion. Exactly one standard bit and one range bit apply; the zero
// bits of a pair fall back to the BT601 video-range default.
type Flag uint32

const (
	BT601      Flag = 1 << 0
	BT709      Flag = 1 << 1
	VideoRange Flag = 1 << 2
	FullRange  Flag = 1 << 3
)

// DefaultFlag is the broadcast-legacy default.
const DefaultFlag = BT601 | VideoRange

// coefSet holds the fixed-point coefficients of one standard-range
// combination, scaled by 256. Red, green and blue are weighted sums of
// the de-offset luma C and chroma D (U-128) and E (V-128):
//
//	r = (y*C + rv*E + 128) >> 8
//	g = (y*C - gu*D - gv*E + 128) >> 8
//	b = (y*C + bu*D + 128) >> 8
//
// Video range additionally subtracts 16 from luma (ySub).
type coefSet struct {
	ySub int
	y    int
	rv   int
	gu   int
	gv   int
	bu   int
}

var (
	coef601v = coefSet{ySub: 16, y: 298, rv: 409, gu: 100, gv: 208, bu: 516}
	coef601f = coefSet{ySub: 0, y: 256, rv: 359, gu: 88, gv: 183, bu: 454}
	coef709v = coefSet{ySub: 16, y: 298, rv: 459, gu: 55, gv: 136, bu: 541}
	coef709f = coefSet{ySub: 0, y: 256, rv: 403, gu: 48, gv: 120, bu: 475}
)

// Narrow 6-bit variants of the same coefficients, used by the 8-pixel
// block kernels whose lane math stays within 16-bit precision. Results
// may differ from the 8-bit sets by a couple of intensity levels.
var (
	narrow601v = coefSet{ySub: 16, y: 74, rv: 102, gu: 25, gv: 52, bu: 129}
	narrow601f = coefSet{ySub: 0, y: 64, rv: 90, gu: 22, gv: 46, bu: 114}
	narrow709v = coefSet{ySub: 16, y: 74, rv: 115, gu: 14, gv: 34, bu: 135}
	narrow709f = coefSet{ySub: 0, y: 64, rv: 101, gu: 12, gv: 30, bu: 119}
)

func coefFor(f Flag) coefSet {
	if f&BT709 != 0 {
		if f&FullRange != 0 {
			return coef709f
		}
		return coef709v
	}
	if f&FullRange != 0 {
		return coef601f
	}
	return coef601v
}

func narrowCoefFor(f Flag) coefSet {
	if f&BT709 != 0 {
		if f&FullRange != 0 {
			return narrow709f
		}
		return narrow709v
	}
	if f&FullRange != 0 {
		return narrow601f
	}
	return narrow601v
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// convert maps one raw YUV sample triple to clamped RGB.
func (c coefSet) convert(y, u, v int) (int, int, int) {
	cc := y - c.ySub
	d := u - 128
	e := v - 128
	r := (c.y*cc + c.rv*e + 128) >> 8
	g := (c.y*cc - c.gu*d - c.gv*e + 128) >> 8
	b := (c.y*cc + c.bu*d + 128) >> 8
	return clamp8(r), clamp8(g), clamp8(b)
}

// convert6 is the 6-bit shift variant used with the narrow sets.
func (c coefSet) convert6(y, u, v int) (int, int, int) {
	cc := y - c.ySub
	d := u - 128
	e := v - 128
	r := (c.y*cc + c.rv*e + 32) >> 6
	g := (c.y*cc - c.gu*d - c.gv*e + 32) >> 6
	b := (c.y*cc + c.bu*d + 32) >> 6
	return clamp8(r), clamp8(g), clamp8(b)
}
