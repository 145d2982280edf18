package convert

import (
	"bytes"
	"testing"
)

// fillPattern produces deterministic but non-uniform sample data.
func fillPattern(n int, seed byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i*7) ^ seed
	}
	return buf
}

var testFlags = []Flag{
	BT601 | VideoRange,
	BT601 | FullRange,
	BT709 | VideoRange,
	BT709 | FullRange,
}

// testWidths exercises block boundaries: below, at and above both lane
// counts, plus odd widths whose last pixel has no packed partner.
var testWidths = []int{2, 7, 8, 9, 15, 16, 17, 31, 33, 64}

const testHeight = 4

func maxByteDiff(a, b []byte) int {
	max := 0
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

func TestNV12BlockKernelsMatchScalar(t *testing.T) {
	for _, flag := range testFlags {
		for _, width := range testWidths {
			srcY := fillPattern(width*testHeight, 3)
			srcUV := fillPattern(width*testHeight/2+width, 91)
			stride := width*3 + 9 // slack after every row

			want := make([]byte, stride*testHeight)
			got := make([]byte, stride*testHeight)

			nv12ToRGBScalar(srcY, width, srcUV, width, want, stride, width, testHeight, flag, false, false, false)

			nv12ToRGBWide16(srcY, width, srcUV, width, got, stride, width, testHeight, flag, false, false, false)
			if !bytes.Equal(got, want) {
				t.Errorf("flag %v width %d: wide block diverges from scalar", flag, width)
			}

			for i := range got {
				got[i] = 0
			}
			nv12ToRGBNarrow8(srcY, width, srcUV, width, got, stride, width, testHeight, flag, false, false, false)
			for y := 0; y < testHeight; y++ {
				row := y * stride
				if d := maxByteDiff(got[row:row+width*3], want[row:row+width*3]); d > 3 {
					t.Errorf("flag %v width %d row %d: narrow block off by %d", flag, width, y, d)
				}
			}
		}
	}
}

func TestI420BlockKernelsMatchScalar(t *testing.T) {
	for _, width := range testWidths {
		if width%2 != 0 {
			continue // planar chroma needs even width
		}
		srcY := fillPattern(width*testHeight, 5)
		srcU := fillPattern(width/2*testHeight/2+width, 50)
		srcV := fillPattern(width/2*testHeight/2+width, 180)
		stride := width * 4

		want := make([]byte, stride*testHeight)
		got := make([]byte, stride*testHeight)

		i420ToRGBScalar(srcY, width, srcU, width/2, srcV, width/2, want, stride, width, testHeight, DefaultFlag, true, true)

		i420ToRGBWide16(srcY, width, srcU, width/2, srcV, width/2, got, stride, width, testHeight, DefaultFlag, true, true)
		if !bytes.Equal(got, want) {
			t.Errorf("width %d: wide block diverges from scalar", width)
		}

		for i := range got {
			got[i] = 0
		}
		i420ToRGBNarrow8(srcY, width, srcU, width/2, srcV, width/2, got, stride, width, testHeight, DefaultFlag, true, true)
		if d := maxByteDiff(got, want); d > 3 {
			t.Errorf("width %d: narrow block off by %d", width, d)
		}
	}
}

func TestPackedBlockKernelsMatchScalar(t *testing.T) {
	for _, uFirst := range []bool{false, true} {
		for _, width := range testWidths {
			if width%2 != 0 {
				continue // packed 4:2:2 rows carry whole pixel pairs
			}
			src := fillPattern(width*2*testHeight, 27)
			stride := width * 3

			want := make([]byte, stride*testHeight)
			got := make([]byte, stride*testHeight)

			packedToRGBScalar(src, width*2, want, stride, width, testHeight, BT709|VideoRange, false, false, uFirst)

			packedToRGBWide16(src, width*2, got, stride, width, testHeight, BT709|VideoRange, false, false, uFirst)
			if !bytes.Equal(got, want) {
				t.Errorf("uFirst=%v width %d: wide block diverges from scalar", uFirst, width)
			}

			for i := range got {
				got[i] = 0
			}
			packedToRGBNarrow8(src, width*2, got, stride, width, testHeight, BT709|VideoRange, false, false, uFirst)
			if d := maxByteDiff(got, want); d > 3 {
				t.Errorf("uFirst=%v width %d: narrow block off by %d", uFirst, width, d)
			}
		}
	}
}

func TestKernelsRespectRowBounds(t *testing.T) {
	const width, slack = 17, 16
	stride := width*3 + slack
	srcY := fillPattern(width*testHeight, 1)
	srcUV := fillPattern(width*testHeight/2+width, 2)

	kernels := map[string]func(dst []byte){
		"scalar": func(dst []byte) {
			nv12ToRGBScalar(srcY, width, srcUV, width, dst, stride, width, testHeight, DefaultFlag, false, false, false)
		},
		"wide": func(dst []byte) {
			nv12ToRGBWide16(srcY, width, srcUV, width, dst, stride, width, testHeight, DefaultFlag, false, false, false)
		},
		"narrow": func(dst []byte) {
			nv12ToRGBNarrow8(srcY, width, srcUV, width, dst, stride, width, testHeight, DefaultFlag, false, false, false)
		},
	}
	for name, run := range kernels {
		dst := make([]byte, stride*testHeight)
		for i := range dst {
			dst[i] = 0xAA
		}
		run(dst)
		for y := 0; y < testHeight; y++ {
			pad := dst[y*stride+width*3 : (y+1)*stride]
			for i, b := range pad {
				if b != 0xAA {
					t.Fatalf("%s kernel wrote past row %d at pad byte %d", name, y, i)
				}
			}
		}
	}
}

func TestNegativeHeightFlipsRows(t *testing.T) {
	const width = 8
	srcY := fillPattern(width*testHeight, 9)
	srcUV := fillPattern(width*testHeight/2, 33)
	stride := width * 3

	straight := make([]byte, stride*testHeight)
	flipped := make([]byte, stride*testHeight)
	nv12ToRGBScalar(srcY, width, srcUV, width, straight, stride, width, testHeight, DefaultFlag, false, false, false)
	nv12ToRGBScalar(srcY, width, srcUV, width, flipped, stride, width, -testHeight, DefaultFlag, false, false, false)

	for y := 0; y < testHeight; y++ {
		want := straight[y*stride : (y+1)*stride]
		got := flipped[(testHeight-1-y)*stride : (testHeight-y)*stride]
		if !bytes.Equal(got, want) {
			t.Fatalf("row %d not mirrored by negative height", y)
		}
	}
}

func TestAlphaForcedOpaque(t *testing.T) {
	const width = 10
	srcY := fillPattern(width*testHeight, 77)
	srcUV := fillPattern(width*testHeight/2, 13)
	stride := width * 4

	for name, run := range map[string]func(dst []byte){
		"scalar": func(dst []byte) {
			nv12ToRGBScalar(srcY, width, srcUV, width, dst, stride, width, testHeight, DefaultFlag, false, true, false)
		},
		"wide": func(dst []byte) {
			nv12ToRGBWide16(srcY, width, srcUV, width, dst, stride, width, testHeight, DefaultFlag, false, true, false)
		},
		"narrow": func(dst []byte) {
			nv12ToRGBNarrow8(srcY, width, srcUV, width, dst, stride, width, testHeight, DefaultFlag, false, true, false)
		},
	} {
		dst := make([]byte, stride*testHeight)
		run(dst)
		for i := 3; i < len(dst); i += 4 {
			if dst[i] != 255 {
				t.Fatalf("%s kernel: alpha byte %d = %d, want 255", name, i, dst[i])
			}
		}
	}
}

func TestNV21SwapsChroma(t *testing.T) {
	const width = 4
	srcY := fillPattern(width*testHeight, 0)
	srcUV := fillPattern(width*testHeight/2, 0)
	swapped := make([]byte, len(srcUV))
	for i := 0; i+1 < len(srcUV); i += 2 {
		swapped[i], swapped[i+1] = srcUV[i+1], srcUV[i]
	}
	stride := width * 3

	asNV12 := make([]byte, stride*testHeight)
	asNV21 := make([]byte, stride*testHeight)
	nv12ToRGBScalar(srcY, width, srcUV, width, asNV12, stride, width, testHeight, DefaultFlag, false, false, false)
	nv12ToRGBScalar(srcY, width, swapped, width, asNV21, stride, width, testHeight, DefaultFlag, false, false, true)

	if !bytes.Equal(asNV12, asNV21) {
		t.Error("NV21 with pre-swapped chroma does not match NV12")
	}
}

func TestGrayNV12AcrossBackends(t *testing.T) {
	const width, height = 8, 8
	srcY := make([]byte, width*height)
	srcUV := make([]byte, width*height/2)
	for i := range srcY {
		srcY[i] = 126
	}
	for i := range srcUV {
		srcUV[i] = 128
	}
	stride := width * 4

	for name, run := range map[string]func(dst []byte){
		"scalar": func(dst []byte) {
			nv12ToRGBScalar(srcY, width, srcUV, width, dst, stride, width, height, DefaultFlag, false, true, false)
		},
		"wide": func(dst []byte) {
			nv12ToRGBWide16(srcY, width, srcUV, width, dst, stride, width, height, DefaultFlag, false, true, false)
		},
		"narrow": func(dst []byte) {
			nv12ToRGBNarrow8(srcY, width, srcUV, width, dst, stride, width, height, DefaultFlag, false, true, false)
		},
	} {
		dst := make([]byte, stride*height)
		run(dst)
		for i := 0; i < len(dst); i += 4 {
			for c := 0; c < 3; c++ {
				d := int(dst[i+c]) - 128
				if d < -3 || d > 3 {
					t.Fatalf("%s kernel: gray pixel channel %d = %d, want ~128", name, c, dst[i+c])
				}
			}
			if dst[i+3] != 255 {
				t.Fatalf("%s kernel: alpha = %d, want 255", name, dst[i+3])
			}
		}
	}
}

func TestShuffleRoundTrips(t *testing.T) {
	const width, height = 13, 3
	rgb := fillPattern(width*3*height, 44)

	// RGB -> RGBA -> RGB restores the original bytes.
	rgba := make([]byte, width*4*height)
	RGBToRGBA(rgb, width*3, rgba, width*4, width, height)
	back := make([]byte, width*3*height)
	RGBAToRGB(rgba, width*4, back, width*3, width, height)
	if !bytes.Equal(back, rgb) {
		t.Error("RGB->RGBA->RGB round trip altered pixels")
	}
	for i := 3; i < len(rgba); i += 4 {
		if rgba[i] != 255 {
			t.Fatalf("widening left alpha byte %d at %d", rgba[i], i)
		}
	}

	// Swapping R and B twice is the identity.
	bgr := make([]byte, width*3*height)
	RGBToBGR(rgb, width*3, bgr, width*3, width, height)
	again := make([]byte, width*3*height)
	RGBToBGR(bgr, width*3, again, width*3, width, height)
	if !bytes.Equal(again, rgb) {
		t.Error("double R/B swap is not the identity")
	}

	// RGBA -> BGRA swaps in place of channel 0 and 2 only.
	bgra := make([]byte, width*4*height)
	RGBAToBGRA(rgba, width*4, bgra, width*4, width, height)
	for p := 0; p < width*height; p++ {
		i := p * 4
		if bgra[i] != rgba[i+2] || bgra[i+1] != rgba[i+1] || bgra[i+2] != rgba[i] || bgra[i+3] != rgba[i+3] {
			t.Fatalf("pixel %d: %v -> %v is not an R/B swap", p, rgba[i:i+4], bgra[i:i+4])
		}
	}
}

func TestShuffleBlockKernelsMatchScalar(t *testing.T) {
	const height = 3
	for _, width := range testWidths {
		src := fillPattern(width*4*height, 66)

		want := make([]byte, width*4*height)
		got := make([]byte, width*4*height)
		shuffleScalar(src, width*4, want, width*4, width, height, 4, 4, true)

		shuffleWide16(src, width*4, got, width*4, width, height, 4, 4, true)
		if !bytes.Equal(got, want) {
			t.Errorf("width %d: wide shuffle diverges from scalar", width)
		}

		for i := range got {
			got[i] = 0
		}
		shuffleNarrow8(src, width*4, got, width*4, width, height, 4, 4, true)
		if !bytes.Equal(got, want) {
			t.Errorf("width %d: narrow shuffle diverges from scalar", width)
		}
	}
}
