// Package framecap provides the data model for camera frame capture:
// pixel formats, frame buffers, and the allocators that own their memory.
//
// A Frame describes one image in flight: up to three plane slices with
// byte strides, dimensions, a pixel format, a monotonic timestamp and a
// strictly increasing index. Frame memory is owned by an Allocator so a
// buffer outlives any consumer still reading it, and frames carrying
// borrowed platform memory release it through a BorrowedBuffer exactly
// once when the last reference drops.
//
// Conversion between pixel formats lives in the convert package; frame
// pooling and delivery live in the capture package.
package framecap
