package convert

// 16-pixel block kernels patterned after the AVX2 lane layout: chroma is
// deinterleaved and duplicated across lane pairs, luma and chroma are
// de-offset, and the three weighted sums run across all lanes before the
// interleaved store. Lane math uses 32-bit intermediates with the full
// 8-bit coefficient sets, so output matches the scalar path bit for bit.
//
// Pure Go stands in for the intrinsics; the block structure (and the
// scalar tail guaranteeing the row-bound invariant) mirrors the
// vectorized original.

const wideLanes = 16

func storeWide(dRow []byte, x, ch int, yl, ul, vl *[wideLanes]int32, c coefSet, bgr, alpha bool) {
	for i := 0; i < wideLanes; i++ {
		yc := int32(c.y) * yl[i]
		r := clamp8(int((yc + int32(c.rv)*vl[i] + 128) >> 8))
		g := clamp8(int((yc - int32(c.gu)*ul[i] - int32(c.gv)*vl[i] + 128) >> 8))
		b := clamp8(int((yc + int32(c.bu)*ul[i] + 128) >> 8))
		writePixel(dRow, (x+i)*ch, r, g, b, bgr, alpha)
	}
}

func nv12ToRGBWide16(srcY []byte, yStride int, srcUV []byte, uvStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha, vFirst bool) {
	h, off, step := dstRows(dstStride, height)
	c := coefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	var yl, ul, vl [wideLanes]int32
	for y := 0; y < h; y++ {
		yRow := srcY[y*yStride:]
		uvRow := srcUV[(y/2)*uvStride:]
		dRow := dst[off+y*step:]
		x := 0
		for ; x+wideLanes <= width; x += wideLanes {
			for i := 0; i < wideLanes/2; i++ {
				u := int32(uvRow[x+2*i])
				v := int32(uvRow[x+2*i+1])
				if vFirst {
					u, v = v, u
				}
				ul[2*i], ul[2*i+1] = u-128, u-128
				vl[2*i], vl[2*i+1] = v-128, v-128
			}
			for i := 0; i < wideLanes; i++ {
				yl[i] = int32(yRow[x+i]) - int32(c.ySub)
			}
			storeWide(dRow, x, ch, &yl, &ul, &vl, c, bgr, alpha)
		}
		for ; x < width; x += 2 {
			u := int(uvRow[x])
			v := int(uvRow[x+1])
			if vFirst {
				u, v = v, u
			}
			r, g, b := c.convert(int(yRow[x]), u, v)
			writePixel(dRow, x*ch, r, g, b, bgr, alpha)
			if x+1 < width {
				r, g, b = c.convert(int(yRow[x+1]), u, v)
				writePixel(dRow, (x+1)*ch, r, g, b, bgr, alpha)
			}
		}
	}
}

func i420ToRGBWide16(srcY []byte, yStride int, srcU []byte, uStride int, srcV []byte, vStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha bool) {
	h, off, step := dstRows(dstStride, height)
	c := coefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	var yl, ul, vl [wideLanes]int32
	for y := 0; y < h; y++ {
		yRow := srcY[y*yStride:]
		uRow := srcU[(y/2)*uStride:]
		vRow := srcV[(y/2)*vStride:]
		dRow := dst[off+y*step:]
		x := 0
		for ; x+wideLanes <= width; x += wideLanes {
			for i := 0; i < wideLanes/2; i++ {
				u := int32(uRow[x/2+i]) - 128
				v := int32(vRow[x/2+i]) - 128
				ul[2*i], ul[2*i+1] = u, u
				vl[2*i], vl[2*i+1] = v, v
			}
			for i := 0; i < wideLanes; i++ {
				yl[i] = int32(yRow[x+i]) - int32(c.ySub)
			}
			storeWide(dRow, x, ch, &yl, &ul, &vl, c, bgr, alpha)
		}
		for ; x < width; x += 2 {
			u := int(uRow[x/2])
			v := int(vRow[x/2])
			r, g, b := c.convert(int(yRow[x]), u, v)
			writePixel(dRow, x*ch, r, g, b, bgr, alpha)
			if x+1 < width {
				r, g, b = c.convert(int(yRow[x+1]), u, v)
				writePixel(dRow, (x+1)*ch, r, g, b, bgr, alpha)
			}
		}
	}
}

func packedToRGBWide16(src []byte, srcStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha, uFirst bool) {
	h, off, step := dstRows(dstStride, height)
	c := coefFor(flag)
	ch := 3
	if alpha {
		ch = 4
	}
	var yl, ul, vl [wideLanes]int32
	for y := 0; y < h; y++ {
		sRow := src[y*srcStride:]
		dRow := dst[off+y*step:]
		x := 0
		for ; x+wideLanes <= width; x += wideLanes {
			for i := 0; i < wideLanes/2; i++ {
				base := (x/2 + i) * 4
				var y0, u, y1, v int32
				if uFirst {
					u = int32(sRow[base+0])
					y0 = int32(sRow[base+1])
					v = int32(sRow[base+2])
					y1 = int32(sRow[base+3])
				} else {
					y0 = int32(sRow[base+0])
					u = int32(sRow[base+1])
					y1 = int32(sRow[base+2])
					v = int32(sRow[base+3])
				}
				yl[2*i], yl[2*i+1] = y0-int32(c.ySub), y1-int32(c.ySub)
				ul[2*i], ul[2*i+1] = u-128, u-128
				vl[2*i], vl[2*i+1] = v-128, v-128
			}
			storeWide(dRow, x, ch, &yl, &ul, &vl, c, bgr, alpha)
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
			r, g, b := c.convert(y0, u, v)
			writePixel(dRow, x*ch, r, g, b, bgr, alpha)
			if x+1 < width {
				r, g, b = c.convert(y1, u, v)
				writePixel(dRow, (x+1)*ch, r, g, b, bgr, alpha)
			}
		}
	}
}

// shuffleWide16 moves 16 pixels per iteration. Byte moves carry no
// arithmetic, so the block path differs from scalar only in access
// pattern; the scalar tail covers the remainder.
func shuffleWide16(src []byte, srcStride int,
	dst []byte, dstStride, width, height, inCh, outCh int, swapRB bool) {
	h, off, step := dstRows(dstStride, height)
	for y := 0; y < h; y++ {
		sRow := src[y*srcStride:]
		dRow := dst[off+y*step:]
		x := 0
		for ; x+wideLanes <= width; x += wideLanes {
			si, di := x*inCh, x*outCh
			for i := 0; i < wideLanes; i++ {
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
