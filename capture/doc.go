// Package capture implements the frame delivery path: a bounded frame
// pool that recycles buffers across captures, a bounded available-frame
// queue with drop-oldest overflow, and a Provider tying them together
// with optional in-place format conversion and a synchronous new-frame
// callback.
package capture
