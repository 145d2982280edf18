package convert

import (
	"log/slog"
	"time"

	framecap "github.com/smazurov/framecap"
	"github.com/smazurov/framecap/internal/metrics"
)

// paddedStride returns the destination row stride for an RGB-family
// layout: 3-channel rows are padded to a 32-byte multiple so block
// kernels start every row aligned, 4-channel rows are naturally aligned.
func paddedStride(width, channels int) int {
	if channels == 3 {
		return (width*3 + 31) &^ 31
	}
	return width * channels
}

// FlagFor derives the conversion flag implied by a YUV pixel format:
// range from the format's range bit, standard left at the BT601 default.
// Formats without a pinned range read as video range.
func FlagFor(format framecap.PixelFormat) Flag {
	if format.IsFullRange() {
		return BT601 | FullRange
	}
	return DefaultFlag
}

// Convert rewrites the frame in place to the target pixel format, using
// the flag implied by the source format. See ConvertWithFlag.
func Convert(f *framecap.Frame, to framecap.PixelFormat, verticalFlip bool) bool {
	return ConvertWithFlag(f, to, FlagFor(f.Format), verticalFlip)
}

// ConvertWithFlag rewrites the frame in place to the target pixel
// format. Supported directions are YUV to RGB-family and RGB-family
// reordering; RGB to YUV returns false without touching the frame. When
// the frame already has the target format the call is a no-op unless
// verticalFlip is set, in which case only the flip pass runs.
//
// The source planes must not already alias the frame's allocator buffer:
// conversion writes its output there, and an aliasing source means the
// frame was converted once before.
func ConvertWithFlag(f *framecap.Frame, to framecap.PixelFormat, flag Flag, verticalFlip bool) bool {
	if f.Format == to || (to.IsYUV() && f.Format.Include(to)) {
		if verticalFlip {
			flipVertical(f)
		}
		return true
	}
	if !to.IsRGBFamily() {
		// YUV targets (and unknown ones) are out: no RGB to YUV path.
		return false
	}

	kernel := f.Format.String() + "_to_" + to.String()
	backend := ActiveBackend().String()
	start := time.Now()

	var ok bool
	if f.Format.IsYUV() {
		ok = convertYUVToRGB(f, to, flag, verticalFlip)
	} else if f.Format.IsRGBFamily() {
		ok = convertRGBFamily(f, to, verticalFlip)
	}
	if ok {
		metrics.ObserveConversion(kernel, backend, time.Since(start))
	}
	return ok
}

// dstInto resizes the frame's allocator for an RGB-family destination
// and returns the output buffer and stride. Fails when the source planes
// already live in that buffer.
func dstInto(f *framecap.Frame, to framecap.PixelFormat) ([]byte, int, bool) {
	if f.OwnsData() {
		slog.Error("convert: source planes alias the frame allocator, frame was already converted",
			"format", f.Format.String(), "target", to.String())
		return nil, 0, false
	}
	if f.Alloc == nil {
		f.Alloc = framecap.NewDefaultAllocator()
	}
	stride := paddedStride(f.Width, to.Channels())
	size := stride * f.Height
	f.Alloc.Resize(size)
	return f.Alloc.Data()[:size], stride, true
}

// finish repoints the frame at its converted single-plane output.
func finish(f *framecap.Frame, to framecap.PixelFormat, dst []byte, stride int) {
	f.Format = to
	f.Planes[0] = dst
	f.Planes[1] = nil
	f.Planes[2] = nil
	f.Stride[0] = stride
	f.Stride[1] = 0
	f.Stride[2] = 0
	f.SizeInBytes = len(dst)
}

func convertYUVToRGB(f *framecap.Frame, to framecap.PixelFormat, flag Flag, verticalFlip bool) bool {
	// Snapshot the source planes before resizing: the allocator may hand
	// back new memory, but these slices keep the old bytes reachable.
	srcY, srcA, srcB := f.Planes[0], f.Planes[1], f.Planes[2]
	yStride, aStride, bStride := f.Stride[0], f.Stride[1], f.Stride[2]

	dst, stride, ok := dstInto(f, to)
	if !ok {
		return false
	}
	h := f.Height
	if verticalFlip {
		h = -h
	}

	switch {
	case f.Format.Include(framecap.PixelFormatNV12):
		nv12Dispatch(srcY, yStride, srcA, aStride, dst, stride, f.Width, h, flag, to.IsBGROrder(), to.HasAlpha(), false)
	case f.Format.Include(framecap.PixelFormatNV21):
		nv12Dispatch(srcY, yStride, srcA, aStride, dst, stride, f.Width, h, flag, to.IsBGROrder(), to.HasAlpha(), true)
	case f.Format.Include(framecap.PixelFormatI420):
		i420Dispatch(srcY, yStride, srcA, aStride, srcB, bStride, dst, stride, f.Width, h, flag, to.IsBGROrder(), to.HasAlpha())
	case f.Format.Include(framecap.PixelFormatYUYV):
		packedDispatch(srcY, yStride, dst, stride, f.Width, h, flag, to.IsBGROrder(), to.HasAlpha(), false)
	case f.Format.Include(framecap.PixelFormatUYVY):
		packedDispatch(srcY, yStride, dst, stride, f.Width, h, flag, to.IsBGROrder(), to.HasAlpha(), true)
	default:
		return false
	}

	finish(f, to, dst, stride)
	return true
}

func convertRGBFamily(f *framecap.Frame, to framecap.PixelFormat, verticalFlip bool) bool {
	src := f.Planes[0]
	srcStride := f.Stride[0]

	dst, stride, ok := dstInto(f, to)
	if !ok {
		return false
	}
	h := f.Height
	if verticalFlip {
		h = -h
	}

	swapRB := f.Format.IsBGROrder() != to.IsBGROrder()
	shuffleDispatch(src, srcStride, dst, stride, f.Width, h, f.Format.Channels(), to.Channels(), swapRB)

	finish(f, to, dst, stride)
	return true
}

// flipVertical reverses the row order of every active plane. When the
// frame owns its bytes the rows are swapped in place; otherwise the
// planes are copied bottom-up into the frame's allocator, which also
// moves the data off the external buffer.
func flipVertical(f *framecap.Frame) {
	if f.OwnsData() {
		for p := 0; p < 3; p++ {
			if f.Planes[p] == nil || f.Stride[p] == 0 {
				continue
			}
			swapRows(f.Planes[p], f.Stride[p], planeRows(f, p))
		}
		return
	}

	if f.Alloc == nil {
		f.Alloc = framecap.NewDefaultAllocator()
	}
	f.Alloc.Resize(f.SizeInBytes)
	buf := f.Alloc.Data()

	off := 0
	for p := 0; p < 3; p++ {
		if f.Planes[p] == nil || f.Stride[p] == 0 {
			f.Planes[p] = nil
			continue
		}
		rows := planeRows(f, p)
		size := f.Stride[p] * rows
		plane := buf[off : off+size]
		for r := 0; r < rows; r++ {
			copy(plane[r*f.Stride[p]:(r+1)*f.Stride[p]], f.Planes[p][(rows-1-r)*f.Stride[p]:])
		}
		f.Planes[p] = plane
		off += size
	}
}

func planeRows(f *framecap.Frame, plane int) int {
	if plane == 0 {
		return f.Height
	}
	// Chroma planes of the 4:2:0 layouts are half height.
	return f.Height / 2
}

func swapRows(plane []byte, stride, rows int) {
	tmp := make([]byte, stride)
	for top, bot := 0, rows-1; top < bot; top, bot = top+1, bot-1 {
		a := plane[top*stride : (top+1)*stride]
		b := plane[bot*stride : (bot+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
