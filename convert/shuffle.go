package convert

// RGB-family reordering kernels. Swap-RB and add/remove-alpha are
// independent operations; each named function is one composition of the
// two, so callers pick exactly the transform they need. The same
// function serves both channel orders of a symmetric pair: RGBAToBGRA
// also converts BGRA to RGBA, RGBToBGRA also converts BGR to RGBA, and
// so on.

// RGBAToBGRA swaps R and B, keeping alpha. Also BGRA to RGBA.
func RGBAToBGRA(src []byte, srcStride int, dst []byte, dstStride, width, height int) {
	shuffleDispatch(src, srcStride, dst, dstStride, width, height, 4, 4, true)
}

// RGBToBGR swaps R and B on 3-channel rows. Also BGR to RGB.
func RGBToBGR(src []byte, srcStride int, dst []byte, dstStride, width, height int) {
	shuffleDispatch(src, srcStride, dst, dstStride, width, height, 3, 3, true)
}

// RGBAToBGR swaps R and B and drops alpha. Also BGRA to RGB.
func RGBAToBGR(src []byte, srcStride int, dst []byte, dstStride, width, height int) {
	shuffleDispatch(src, srcStride, dst, dstStride, width, height, 4, 3, true)
}

// RGBAToRGB drops the alpha channel. Also BGRA to BGR.
func RGBAToRGB(src []byte, srcStride int, dst []byte, dstStride, width, height int) {
	shuffleDispatch(src, srcStride, dst, dstStride, width, height, 4, 3, false)
}

// RGBToBGRA swaps R and B and appends a 255 alpha. Also BGR to RGBA.
func RGBToBGRA(src []byte, srcStride int, dst []byte, dstStride, width, height int) {
	shuffleDispatch(src, srcStride, dst, dstStride, width, height, 3, 4, true)
}

// RGBToRGBA appends a 255 alpha. Also BGR to BGRA.
func RGBToRGBA(src []byte, srcStride int, dst []byte, dstStride, width, height int) {
	shuffleDispatch(src, srcStride, dst, dstStride, width, height, 3, 4, false)
}
