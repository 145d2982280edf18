package framecap

import "fmt"

// PixelFormat is a bit-tagged pixel layout identifier. A value combines a
// base layout with orthogonal semantic bits, so compatibility checks test
// individual bits rather than whole values.
type PixelFormat uint32

// Semantic bits. RGBBit and BGRBit distinguish the R-G-B channel order;
// the range bits both imply YUVColorBit.
const (
	FormatRGBBit PixelFormat = 1 << 3
	FormatBGRBit PixelFormat = 1 << 4

	FormatYUVColorBit   PixelFormat = 1 << 16
	FormatVideoRangeBit PixelFormat = 1<<17 | FormatYUVColorBit
	FormatFullRangeBit  PixelFormat = 1<<18 | FormatYUVColorBit

	FormatRGBColorBit PixelFormat = 1 << 19
	FormatAlphaBit    PixelFormat = 1 << 20
)

// Known pixel formats. Each named format has a distinct value; the
// alpha-bearing RGB variants differ in their channel-order bit.
const (
	PixelFormatUnknown PixelFormat = 0

	// NV12: planar 4:2:0, full-resolution Y plane plus one interleaved
	// UV plane (U first). The v/f variants pin the value range.
	PixelFormatNV12  PixelFormat = 1<<0 | FormatYUVColorBit
	PixelFormatNV12v PixelFormat = PixelFormatNV12 | FormatVideoRangeBit
	PixelFormatNV12f PixelFormat = PixelFormatNV12 | FormatFullRangeBit

	// NV21: like NV12 with the chroma bytes swapped (V first).
	PixelFormatNV21  PixelFormat = 1<<1 | FormatYUVColorBit
	PixelFormatNV21v PixelFormat = PixelFormatNV21 | FormatVideoRangeBit
	PixelFormatNV21f PixelFormat = PixelFormatNV21 | FormatFullRangeBit

	// I420: planar 4:2:0 with separate half-resolution U and V planes.
	PixelFormatI420  PixelFormat = 1<<2 | FormatYUVColorBit
	PixelFormatI420v PixelFormat = PixelFormatI420 | FormatVideoRangeBit
	PixelFormatI420f PixelFormat = PixelFormatI420 | FormatFullRangeBit

	// YUYV: packed 4:2:2, Y0 U0 Y1 V0 per pair of pixels.
	PixelFormatYUYV  PixelFormat = 1<<5 | FormatYUVColorBit
	PixelFormatYUYVv PixelFormat = PixelFormatYUYV | FormatVideoRangeBit
	PixelFormatYUYVf PixelFormat = PixelFormatYUYV | FormatFullRangeBit

	// UYVY: packed 4:2:2, U0 Y0 V0 Y1 per pair of pixels.
	PixelFormatUYVY  PixelFormat = 1<<6 | FormatYUVColorBit
	PixelFormatUYVYv PixelFormat = PixelFormatUYVY | FormatVideoRangeBit
	PixelFormatUYVYf PixelFormat = PixelFormatUYVY | FormatFullRangeBit

	// RGB family, 3 bytes per pixel.
	PixelFormatRGB24 PixelFormat = FormatRGBBit | FormatRGBColorBit
	PixelFormatBGR24 PixelFormat = FormatBGRBit | FormatRGBColorBit

	// RGB family, 4 bytes per pixel, alpha channel forced to 0xFF.
	PixelFormatRGBA32 PixelFormat = PixelFormatRGB24 | FormatAlphaBit
	PixelFormatBGRA32 PixelFormat = PixelFormatBGR24 | FormatAlphaBit
)

// Include reports whether f carries all bits of rhs.
func (f PixelFormat) Include(rhs PixelFormat) bool {
	return f&rhs == rhs
}

// IsYUV reports whether the format is any YUV layout.
func (f PixelFormat) IsYUV() bool { return f&FormatYUVColorBit != 0 }

// IsRGBFamily reports whether the format is a packed RGB-order layout.
func (f PixelFormat) IsRGBFamily() bool { return f&FormatRGBColorBit != 0 }

// HasAlpha reports whether the layout carries an alpha channel.
func (f PixelFormat) HasAlpha() bool { return f&FormatAlphaBit != 0 }

// IsFullRange reports whether a YUV format uses the full 0-255 value
// range. Video range (16-235 luma) is the default when unset.
func (f PixelFormat) IsFullRange() bool {
	return f&FormatFullRangeBit == FormatFullRangeBit
}

// IsBGROrder reports whether the blue channel comes first.
func (f PixelFormat) IsBGROrder() bool { return f&FormatBGRBit != 0 }

// Channels returns the byte count per pixel for RGB-family formats, or 0
// for planar and packed YUV layouts where the notion does not apply.
func (f PixelFormat) Channels() int {
	if !f.IsRGBFamily() {
		return 0
	}
	if f.HasAlpha() {
		return 4
	}
	return 3
}

// PlaneCount returns the number of active planes for the layout.
func (f PixelFormat) PlaneCount() int {
	switch {
	case f.Include(PixelFormatI420):
		return 3
	case f.Include(PixelFormatNV12) || f.Include(PixelFormatNV21):
		return 2
	default:
		return 1
	}
}

func (f PixelFormat) String() string {
	base := ""
	switch {
	case f == PixelFormatUnknown:
		return "Unknown"
	case f.Include(PixelFormatNV12):
		base = "NV12"
	case f.Include(PixelFormatNV21):
		base = "NV21"
	case f.Include(PixelFormatI420):
		base = "I420"
	case f.Include(PixelFormatYUYV):
		base = "YUYV"
	case f.Include(PixelFormatUYVY):
		base = "UYVY"
	case f.Include(PixelFormatRGBA32):
		return "RGBA32"
	case f.Include(PixelFormatBGRA32):
		return "BGRA32"
	case f.Include(PixelFormatRGB24):
		return "RGB24"
	case f.Include(PixelFormatBGR24):
		return "BGR24"
	default:
		return fmt.Sprintf("PixelFormat(0x%x)", uint32(f))
	}
	if f.IsFullRange() {
		return base + "f"
	}
	if f.Include(FormatVideoRangeBit) {
		return base + "v"
	}
	return base
}
