// Package convert implements pixel-format conversion kernels for camera
// frames: planar and packed YUV to RGB-family layouts, and RGB-family
// channel reordering with alpha insertion or removal.
//
// Every kernel exists in three implementation families selected by the
// process-wide backend dispatcher: a portable scalar path, a 16-pixel
// block path patterned after the AVX2 lane layout, and an 8-pixel block
// path patterned after the NEON lane layout. The block paths process a
// fixed number of pixels per iteration and hand the row remainder to the
// scalar path, so no kernel ever reads or writes past width times
// bytes-per-pixel of any row.
//
// A negative height asks the kernel to flip vertically while writing:
// the destination is walked from its last row backward with a negated
// stride, without copying the source.
package convert
