package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/smazurov/framecap/convert"
	"github.com/spf13/cobra"
)

// CreateBenchCmd creates the bench command.
func CreateBenchCmd() *cobra.Command {
	var width int
	var height int
	var iterations int
	var backend string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the conversion kernels on synthetic frames",
		Run: func(_ *cobra.Command, _ []string) {
			b, ok := convert.ParseBackend(backend)
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown backend %q\n", backend)
				os.Exit(1)
			}
			if !convert.SetBackend(b) {
				fmt.Fprintf(os.Stderr, "backend %q not supported here, using %s\n",
					backend, convert.ActiveBackend())
			}
			runBench(width, height, iterations)
		},
	}

	cmd.Flags().IntVar(&width, "width", 1920, "Frame width in pixels")
	cmd.Flags().IntVar(&height, "height", 1080, "Frame height in pixels")
	cmd.Flags().IntVar(&iterations, "iterations", 100, "Conversions per kernel")
	cmd.Flags().StringVar(&backend, "backend", "auto", "Backend: auto, cpu, avx2, neon, accelerate")

	return cmd
}

func runBench(width, height, iterations int) {
	srcY := patternPlane(width*height, 0)
	srcUV := patternPlane(width*height/2, 64)
	srcU := patternPlane(width*height/4, 64)
	srcV := patternPlane(width*height/4, 192)
	srcPacked := patternPlane(width*height*2, 16)
	srcRGBA := patternPlane(width*height*4, 32)

	rgbStride := (width*3 + 31) &^ 31
	dst := make([]byte, rgbStride*height)
	dst4 := make([]byte, width*4*height)

	type kernel struct {
		name string
		fn   func()
	}
	kernels := []kernel{
		{"nv12_to_rgb24", func() {
			convert.NV12ToRGB24(srcY, width, srcUV, width, dst, rgbStride, width, height, convert.DefaultFlag)
		}},
		{"nv12_to_bgra32", func() {
			convert.NV12ToBGRA32(srcY, width, srcUV, width, dst4, width*4, width, height, convert.DefaultFlag)
		}},
		{"i420_to_rgb24", func() {
			convert.I420ToRGB24(srcY, width, srcU, width/2, srcV, width/2, dst, rgbStride, width, height, convert.DefaultFlag)
		}},
		{"i420_to_bgra32", func() {
			convert.I420ToBGRA32(srcY, width, srcU, width/2, srcV, width/2, dst4, width*4, width, height, convert.DefaultFlag)
		}},
		{"yuyv_to_rgb24", func() {
			convert.YUYVToRGB24(srcPacked, width*2, dst, rgbStride, width, height, convert.DefaultFlag)
		}},
		{"uyvy_to_rgb24", func() {
			convert.UYVYToRGB24(srcPacked, width*2, dst, rgbStride, width, height, convert.DefaultFlag)
		}},
		{"rgba_to_bgra", func() {
			convert.RGBAToBGRA(srcRGBA, width*4, dst4, width*4, width, height)
		}},
		{"rgba_to_rgb", func() {
			convert.RGBAToRGB(srcRGBA, width*4, dst, rgbStride, width, height)
		}},
	}

	pixels := float64(width * height)
	fmt.Printf("backend=%s size=%dx%d iterations=%d\n\n",
		convert.ActiveBackend(), width, height, iterations)
	fmt.Printf("%-18s %12s %12s\n", "KERNEL", "NS/FRAME", "MPIX/S")
	for _, k := range kernels {
		k.fn() // warm up
		start := time.Now()
		for i := 0; i < iterations; i++ {
			k.fn()
		}
		elapsed := time.Since(start)
		perFrame := elapsed / time.Duration(iterations)
		mpixPerSec := pixels / perFrame.Seconds() / 1e6
		fmt.Printf("%-18s %12d %12.1f\n", k.name, perFrame.Nanoseconds(), mpixPerSec)
	}
}

// patternPlane fills a buffer with a deterministic gradient so runs are
// comparable.
func patternPlane(n int, seed byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i) + seed
	}
	return buf
}
