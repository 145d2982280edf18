package convert

// 8-pixel block kernels patterned after the NEON lane layout. Lanes are
// 16-bit, which forces the narrow 6-bit coefficient sets; results may
// differ from the scalar path by a couple of intensity levels, the same
// compression the vectorized original accepts. The row remainder uses
// the same 6-bit math so a row is internally consistent.

const narrowLanes = 8

// storeNarrow widens each lane product past 16 bits before the shift;
// the hardware equivalent saturates instead, and both end up clamped to
// the same byte for any in-gamut sum.
func storeNarrow(dRow []byte, x, ch int, yl, ul, vl *[narrowLanes]int16, c coefSet, bgr, alpha bool) {
	for i := 0; i < narrowLanes; i++ {
		yc := c.y * int(yl[i])
		r := clamp8((yc + c.rv*int(vl[i]) + 32) >> 6)
		g := clamp8((yc - c.gu*int(ul[i]) - c.gv*int(vl[i]) + 32) >> 6)
		b := clamp8((yc + c.bu*int(ul[i]) + 32) >> 6)
		writePixel(dRow, (x+i)*ch, r, g, b, bgr, alpha)
	}
}

func nv12ToRGBNarrow8(srcY []byte, yStride int, srcUV []byte, uvStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha, vFirst bool) {
	h, off, step := dstRows(dstStride, height)
	c := narrowCoefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	var yl, ul, vl [narrowLanes]int16
	for y := 0; y < h; y++ {
		yRow := srcY[y*yStride:]
		uvRow := srcUV[(y/2)*uvStride:]
		dRow := dst[off+y*step:]
		x := 0
		for ; x+narrowLanes <= width; x += narrowLanes {
			for i := 0; i < narrowLanes/2; i++ {
				u := int16(uvRow[x+2*i])
				v := int16(uvRow[x+2*i+1])
				if vFirst {
					u, v = v, u
				}
				ul[2*i], ul[2*i+1] = u-128, u-128
				vl[2*i], vl[2*i+1] = v-128, v-128
			}
			for i := 0; i < narrowLanes; i++ {
				yl[i] = int16(yRow[x+i]) - int16(c.ySub)
			}
			storeNarrow(dRow, x, ch, &yl, &ul, &vl, c, bgr, alpha)
		}
		for ; x < width; x += 2 {
			u := int(uvRow[x])
			v := int(uvRow[x+1])
			if vFirst {
				u, v = v, u
			}
			r, g, b := c.convert6(int(yRow[x]), u, v)
			writePixel(dRow, x*ch, r, g, b, bgr, alpha)
			if x+1 < width {
				r, g, b = c.convert6(int(yRow[x+1]), u, v)
				writePixel(dRow, (x+1)*ch, r, g, b, bgr, alpha)
			}
		}
	}
}

func i420ToRGBNarrow8(srcY []byte, yStride int, srcU []byte, uStride int, srcV []byte, vStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha bool) {
	h, off, step := dstRows(dstStride, height)
	c := narrowCoefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	var yl, ul, vl [narrowLanes]int16
	for y := 0; y < h; y++ {
		yRow := srcY[y*yStride:]
		uRow := srcU[(y/2)*uStride:]
		vRow := srcV[(y/2)*vStride:]
		dRow := dst[off+y*step:]
		x := 0
		for ; x+narrowLanes <= width; x += narrowLanes {
			for i := 0; i < narrowLanes/2; i++ {
				u := int16(uRow[x/2+i]) - 128
				v := int16(vRow[x/2+i]) - 128
				ul[2*i], ul[2*i+1] = u, u
				vl[2*i], vl[2*i+1] = v, v
			}
			for i := 0; i < narrowLanes; i++ {
				yl[i] = int16(yRow[x+i]) - int16(c.ySub)
			}
			storeNarrow(dRow, x, ch, &yl, &ul, &vl, c, bgr, alpha)
		}
		for ; x < width; x += 2 {
			u := int(uRow[x/2])
			v := int(vRow[x/2])
			r, g, b := c.convert6(int(yRow[x]), u, v)
			writePixel(dRow, x*ch, r, g, b, bgr, alpha)
			if x+1 < width {
				r, g, b = c.convert6(int(yRow[x+1]), u, v)
				writePixel(dRow, (x+1)*ch, r, g, b, bgr, alpha)
			}
		}
	}
}

func packedToRGBNarrow8(src []byte, srcStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha, uFirst bool) {
	h, off, step := dstRows(dstStride, height)
	c := narrowCoefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	var yl, ul, vl [narrowLanes]int16
	for y := 0; y < h; y++ {
		sRow := src[y*srcStride:]
		dRow := dst[off+y*step:]
		x := 0
		for ; x+narrowLanes <= width; x += narrowLanes {
			for i := 0; i < narrowLanes/2; i++ {
				base := (x/2 + i) * 4
				var y0, u, y1, v int16
				if uFirst {
					u = int16(sRow[base+0])
					y0 = int16(sRow[base+1])
					v = int16(sRow[base+2])
					y1 = int16(sRow[base+3])
				} else {
					y0 = int16(sRow[base+0])
					u = int16(sRow[base+1])
					y1 = int16(sRow[base+2])
					v = int16(sRow[base+3])
				}
				yl[2*i], yl[2*i+1] = y0-int16(c.ySub), y1-int16(c.ySub)
				ul[2*i], ul[2*i+1] = u-128, u-128
				vl[2*i], vl[2*i+1] = v-128, v-128
			}
			storeNarrow(dRow, x, ch, &yl, &ul, &vl, c, bgr, alpha)
		}
		for ; x < width; x += 2 {
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
			r, g, b := c.convert6(y0, u, v)
			writePixel(dRow, x*ch, r, g, b, bgr, alpha)
			if x+1 < width {
				r, g, b = c.convert6(y1, u, v)
				writePixel(dRow, (x+1)*ch, r, g, b, bgr, alpha)
			}
		}
	}
}

// shuffleNarrow8 moves 8 pixels per iteration; byte moves only.
func shuffleNarrow8(src []byte, srcStride int,
	dst []byte, dstStride, width, height, inCh, outCh int, swapRB bool) {
	h, off, step := dstRows(dstStride, height)
	for y := 0; y < h; y++ {
		sRow := src[y*srcStride:]
		dRow := dst[off+y*step:]
		x := 0
		for ; x+narrowLanes <= width; x += narrowLanes {
			si, di := x*inCh, x*outCh
			for i := 0; i < narrowLanes; i++ {
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
		for si, di := x*inCh, x*outCh; x < width; x++ {
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
