package convert

// Public kernel entry points. Each resolves the active backend per call;
// all variants share one signature per source layout.

func nv12Dispatch(srcY []byte, yStride int, srcUV []byte, uvStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha, vFirst bool) {
	switch ActiveBackend() {
	case BackendAVX2:
		nv12ToRGBWide16(srcY, yStride, srcUV, uvStride, dst, dstStride, width, height, flag, bgr, alpha, vFirst)
	case BackendNEON:
		nv12ToRGBNarrow8(srcY, yStride, srcUV, uvStride, dst, dstStride, width, height, flag, bgr, alpha, vFirst)
	default:
		nv12ToRGBScalar(srcY, yStride, srcUV, uvStride, dst, dstStride, width, height, flag, bgr, alpha, vFirst)
	}
}

func i420Dispatch(srcY []byte, yStride int, srcU []byte, uStride int, srcV []byte, vStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha bool) {
	switch ActiveBackend() {
	case BackendAVX2:
		i420ToRGBWide16(srcY, yStride, srcU, uStride, srcV, vStride, dst, dstStride, width, height, flag, bgr, alpha)
	case BackendNEON:
		i420ToRGBNarrow8(srcY, yStride, srcU, uStride, srcV, vStride, dst, dstStride, width, height, flag, bgr, alpha)
	default:
		i420ToRGBScalar(srcY, yStride, srcU, uStride, srcV, vStride, dst, dstStride, width, height, flag, bgr, alpha)
	}
}

func packedDispatch(src []byte, srcStride int,
	dst []byte, dstStride, width, height int, flag Flag, bgr, alpha, uFirst bool) {
	switch ActiveBackend() {
	case BackendAVX2:
		packedToRGBWide16(src, srcStride, dst, dstStride, width, height, flag, bgr, alpha, uFirst)
	case BackendNEON:
		packedToRGBNarrow8(src, srcStride, dst, dstStride, width, height, flag, bgr, alpha, uFirst)
	default:
		packedToRGBScalar(src, srcStride, dst, dstStride, width, height, flag, bgr, alpha, uFirst)
	}
}

func shuffleDispatch(src []byte, srcStride int,
	dst []byte, dstStride, width, height, inCh, outCh int, swapRB bool) {
	switch ActiveBackend() {
	case BackendAVX2:
		shuffleWide16(src, srcStride, dst, dstStride, width, height, inCh, outCh, swapRB)
	case BackendNEON:
		shuffleNarrow8(src, srcStride, dst, dstStride, width, height, inCh, outCh, swapRB)
	default:
		shuffleScalar(src, srcStride, dst, dstStride, width, height, inCh, outCh, swapRB)
	}
}

// NV12ToRGB24 converts interleaved-UV planar 4:2:0 to 24-bit RGB.
func NV12ToRGB24(srcY []byte, yStride int, srcUV []byte, uvStride int, dst []byte, dstStride, width, height int, flag Flag) {
	nv12Dispatch(srcY, yStride, srcUV, uvStride, dst, dstStride, width, height, flag, false, false, false)
}

// NV12ToBGR24 converts interleaved-UV planar 4:2:0 to 24-bit BGR.
func NV12ToBGR24(srcY []byte, yStride int, srcUV []byte, uvStride int, dst []byte, dstStride, width, height int, flag Flag) {
	nv12Dispatch(srcY, yStride, srcUV, uvStride, dst, dstStride, width, height, flag, true, false, false)
}

// NV12ToRGBA32 converts interleaved-UV planar 4:2:0 to 32-bit RGBA with
// alpha forced to 255.
func NV12ToRGBA32(srcY []byte, yStride int, srcUV []byte, uvStride int, dst []byte, dstStride, width, height int, flag Flag) {
	nv12Dispatch(srcY, yStride, srcUV, uvStride, dst, dstStride, width, height, flag, false, true, false)
}

// NV12ToBGRA32 converts interleaved-UV planar 4:2:0 to 32-bit BGRA with
// alpha forced to 255.
func NV12ToBGRA32(srcY []byte, yStride int, srcUV []byte, uvStride int, dst []byte, dstStride, width, height int, flag Flag) {
	nv12Dispatch(srcY, yStride, srcUV, uvStride, dst, dstStride, width, height, flag, true, true, false)
}

// NV21 variants differ from NV12 only in chroma byte order.

func NV21ToRGB24(srcY []byte, yStride int, srcVU []byte, vuStride int, dst []byte, dstStride, width, height int, flag Flag) {
	nv12Dispatch(srcY, yStride, srcVU, vuStride, dst, dstStride, width, height, flag, false, false, true)
}

func NV21ToBGR24(srcY []byte, yStride int, srcVU []byte, vuStride int, dst []byte, dstStride, width, height int, flag Flag) {
	nv12Dispatch(srcY, yStride, srcVU, vuStride, dst, dstStride, width, height, flag, true, false, true)
}

func NV21ToRGBA32(srcY []byte, yStride int, srcVU []byte, vuStride int, dst []byte, dstStride, width, height int, flag Flag) {
	nv12Dispatch(srcY, yStride, srcVU, vuStride, dst, dstStride, width, height, flag, false, true, true)
}

func NV21ToBGRA32(srcY []byte, yStride int, srcVU []byte, vuStride int, dst []byte, dstStride, width, height int, flag Flag) {
	nv12Dispatch(srcY, yStride, srcVU, vuStride, dst, dstStride, width, height, flag, true, true, true)
}

// I420ToRGB24 converts three-plane 4:2:0 to 24-bit RGB.
func I420ToRGB24(srcY []byte, yStride int, srcU []byte, uStride int, srcV []byte, vStride int, dst []byte, dstStride, width, height int, flag Flag) {
	i420Dispatch(srcY, yStride, srcU, uStride, srcV, vStride, dst, dstStride, width, height, flag, false, false)
}

func I420ToBGR24(srcY []byte, yStride int, srcU []byte, uStride int, srcV []byte, vStride int, dst []byte, dstStride, width, height int, flag Flag) {
	i420Dispatch(srcY, yStride, srcU, uStride, srcV, vStride, dst, dstStride, width, height, flag, true, false)
}

func I420ToRGBA32(srcY []byte, yStride int, srcU []byte, uStride int, srcV []byte, vStride int, dst []byte, dstStride, width, height int, flag Flag) {
	i420Dispatch(srcY, yStride, srcU, uStride, srcV, vStride, dst, dstStride, width, height, flag, false, true)
}

func I420ToBGRA32(srcY []byte, yStride int, srcU []byte, uStride int, srcV []byte, vStride int, dst []byte, dstStride, width, height int, flag Flag) {
	i420Dispatch(srcY, yStride, srcU, uStride, srcV, vStride, dst, dstStride, width, height, flag, true, true)
}

// YUYVToRGB24 converts packed 4:2:2 (Y0 U0 Y1 V0) to 24-bit RGB.
func YUYVToRGB24(src []byte, srcStride int, dst []byte, dstStride, width, height int, flag Flag) {
	packedDispatch(src, srcStride, dst, dstStride, width, height, flag, false, false, false)
}

func YUYVToBGR24(src []byte, srcStride int, dst []byte, dstStride, width, height int, flag Flag) {
	packedDispatch(src, srcStride, dst, dstStride, width, height, flag, true, false, false)
}

func YUYVToRGBA32(src []byte, srcStride int, dst []byte, dstStride, width, height int, flag Flag) {
	packedDispatch(src, srcStride, dst, dstStride, width, height, flag, false, true, false)
}

func YUYVToBGRA32(src []byte, srcStride int, dst []byte, dstStride, width, height int, flag Flag) {
	packedDispatch(src, srcStride, dst, dstStride, width, height, flag, true, true, false)
}

// UYVYToRGB24 converts packed 4:2:2 (U0 Y0 V0 Y1) to 24-bit RGB.
func UYVYToRGB24(src []byte, srcStride int, dst []byte, dstStride, width, height int, flag Flag) {
	packedDispatch(src, srcStride, dst, dstStride, width, height, flag, false, false, true)
}

func UYVYToBGR24(src []byte, srcStride int, dst []byte, dstStride, width, height int, flag Flag) {
	packedDispatch(src, srcStride, dst, dstStride, width, height, flag, true, false, true)
}

func UYVYToRGBA32(src []byte, srcStride int, dst []byte, dstStride, width, height int, flag Flag) {
	packedDispatch(src, srcStride, dst, dstStride, width, height, flag, false, true, true)
}

func UYVYToBGRA32(src []byte, srcStride int, dst []byte, dstStride, width, height int, flag Flag) {
	packedDispatch(src, srcStride, dst, dstStride, width, height, flag, true, true, true)
}
