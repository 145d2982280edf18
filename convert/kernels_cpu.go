package convert

// Portable scalar kernels. Every other backend defers its row remainder
// here, so these define the reference output for the whole package.

// dstRows normalizes a possibly negative height into a row count, a
// starting byte offset and a signed per-row step. Negative height means
// the destination is written bottom-up (vertical flip on the fly).
func dstRows(dstStride, height int) (h, off, step int) {
	if height < 0 {
		h = -height
		return h, (h - 1) * dstStride, -dstStride
	}
	return height, 0, dstStride
}

func writePixel(row []byte, off, r, g, b int, bgr, alpha bool) {
	if bgr {
		row[off+0] = byte(b)
		row[off+1] = byte(g)
		row[off+2] = byte(r)
	} else {
		row[off+0] = byte(r)
		row[off+1] = byte(g)
		row[off+2] = byte(b)
	}
	if alpha {
		row[off+3] = 255
	}
}

// nv12ToRGBScalar converts interleaved-UV planar 4:2:0 data. vFirst
// selects the NV21 byte order (V before U in each chroma pair).
func nv12ToRGBScalar(srcY []byte, yStride int, srcUV []byte, uvStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha, vFirst bool) {
	h, off, step := dstRows(dstStride, height)
	c := coefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	for y := 0; y < h; y++ {
		yRow := srcY[y*yStride:]
		uvRow := srcUV[(y/2)*uvStride:]
		dRow := dst[off+y*step:]
		for x := 0; x < width; x += 2 {
			u := int(uvRow[x])
			v := int(uvRow[x+1])
			if vFirst {
				u, v = v, u
			}
			r0, g0, b0 := c.convert(int(yRow[x]), u, v)
			writePixel(dRow, x*ch, r0, g0, b0, bgr, alpha)
			if x+1 < width {
				r1, g1, b1 := c.convert(int(yRow[x+1]), u, v)
				writePixel(dRow, (x+1)*ch, r1, g1, b1, bgr, alpha)
			}
		}
	}
}

func i420ToRGBScalar(srcY []byte, yStride int, srcU []byte, uStride int, srcV []byte, vStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha bool) {
	h, off, step := dstRows(dstStride, height)
	c := coefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	for y := 0; y < h; y++ {
		yRow := srcY[y*yStride:]
		uRow := srcU[(y/2)*uStride:]
		vRow := srcV[(y/2)*vStride:]
		dRow := dst[off+y*step:]
		for x := 0; x < width; x += 2 {
			u := int(uRow[x/2])
			v := int(vRow[x/2])
			r0, g0, b0 := c.convert(int(yRow[x]), u, v)
			writePixel(dRow, x*ch, r0, g0, b0, bgr, alpha)
			if x+1 < width {
				r1, g1, b1 := c.convert(int(yRow[x+1]), u, v)
				writePixel(dRow, (x+1)*ch, r1, g1, b1, bgr, alpha)
			}
		}
	}
}

// packedToRGBScalar converts packed 4:2:2 data. uFirst selects the UYVY
// byte order (U0 Y0 V0 Y1); otherwise YUYV (Y0 U0 Y1 V0) is assumed.
func packedToRGBScalar(src []byte, srcStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha, uFirst bool) {
	h, off, step := dstRows(dstStride, height)
	c := coefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	for y := 0; y < h; y++ {
		sRow := src[y*srcStride:]
		dRow := dst[off+y*step:]
		for x := 0; x < width; x += 2 {
			base := (x / 2) * 4
			var y0, u, y1, v int
			if uFirst {
				u = int(sRow[base+0])
				y0 = int(sRow[base+1])
				v = int(sRow[base+2])
				y1 = int(sRow[base+3])
			} else {
				y0 = int(sRow[base+0])
				u = int(sRow[base+1])
				y1 = int(sRow[base+2])
				v = int(sRow[base+3])
			}
			r0, g0, b0 := c.convert(y0, u, v)
			writePixel(dRow, x*ch, r0, g0, b0, bgr, alpha)
			if x+1 < width {
				r1, g1, b1 := c.convert(y1, u, v)
				writePixel(dRow, (x+1)*ch, r1, g1, b1, bgr, alpha)
			}
		}
	}
}

// shuffleScalar reorders RGB-family channels. swapRB exchanges the first
// and third channel; a 3-to-4 widening writes a 255 alpha byte and a
// 4-to-3 narrowing drops the source alpha.
func shuffleScalar(src []byte, srcStride int,
	dst []byte, dstStride, width, height, inCh, outCh int, swapRB bool) {
	h, off, step := dstRows(dstStride, height)
	for y := 0; y < h; y++ {
		sRow := src[y*srcStride:]
		dRow := dst[off+y*step:]
		si, di := 0, 0
		for x := 0; x < width; x++ {
			if swapRB {
				dRow[di+0] = sRow[si+2]
				dRow[di+1] = sRow[si+1]
				dRow[di+2] = sRow[si+0]
			} else {
				dRow[di+0] = sRow[si+0]
				dRow[di+1] = sRow[si+1]
				dRow[di+2] = sRow[si+2]
			}
			if outCh == 4 {
				if inCh == 4 {
					dRow[di+3] = sRow[si+3]
				} else {
					dRow[di+3] = 0xff
				}
			}
			si += inCh
			di += outCh
		}
	}
}
