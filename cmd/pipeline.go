package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	framecap "github.com/smazurov/framecap"
	"github.com/smazurov/framecap/capture"
	"github.com/smazurov/framecap/convert"
	"github.com/smazurov/framecap/internal/config"
	"github.com/smazurov/framecap/internal/events"
	"github.com/smazurov/framecap/internal/logging"
	"github.com/smazurov/framecap/internal/metrics/exporters"
	"github.com/smazurov/framecap/internal/systemd"
	"github.com/spf13/cobra"
)

// CreatePipelineCmd creates the pipeline command.
func CreatePipelineCmd() *cobra.Command {
	var configFile string
	var runFor time.Duration
	var fps int
	var width int
	var height int
	var target string

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Run a synthetic capture pipeline",
		Long: `Runs a synthetic frame source through the full delivery path: frame pool, ` +
			`in-place conversion, available queue and grab loop, with a Prometheus ` +
			`endpoint and live config reloading.`,
		Run: func(_ *cobra.Command, _ []string) {
			runPipeline(configFile, runFor, fps, width, height, target)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "config.toml", "Path to configuration file")
	cmd.Flags().DurationVar(&runFor, "duration", 10*time.Second, "How long to run (0 = until interrupted)")
	cmd.Flags().IntVar(&fps, "fps", 30, "Synthetic source frame rate")
	cmd.Flags().IntVar(&width, "width", 1280, "Frame width in pixels")
	cmd.Flags().IntVar(&height, "height", 720, "Frame height in pixels")
	cmd.Flags().StringVar(&target, "target", "bgra32", "Delivery format: rgb24, bgr24, rgba32, bgra32")

	return cmd
}

func runPipeline(configFile string, runFor time.Duration, fps, width, height int, target string) {
	opts, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	loggingConfig := config.LoadLoggingConfig(configFile)
	if opts.LoggingLevel != "" {
		loggingConfig.Level = opts.LoggingLevel
	}
	if opts.LoggingFormat != "" {
		loggingConfig.Format = opts.LoggingFormat
	}
	logging.Initialize(loggingConfig)
	logger := logging.GetLogger("pipeline")

	if opts.Backend != "" {
		applyBackend(opts.Backend)
	}

	targetFormat, ok := parseTargetFormat(target)
	if !ok {
		logger.Error("Unknown target format", "target", target)
		os.Exit(1)
	}

	provider := capture.NewProvider()
	if opts.MaxCacheFrames > 0 {
		provider.SetMaxCacheFrameSize(opts.MaxCacheFrames)
	}
	if opts.MaxAvailableFrames > 0 {
		provider.SetMaxAvailableFrameSize(opts.MaxAvailableFrames)
	}
	provider.SetTargetFormat(targetFormat, false)

	metricsListen := opts.MetricsListen
	if metricsListen == "" {
		metricsListen = ":9090"
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", exporters.HTTPHandler())
		logger.Info("Metrics endpoint listening", "addr", metricsListen)
		if serveErr := http.ListenAndServe(metricsListen, mux); serveErr != nil {
			logger.Warn("Metrics endpoint failed", "error", serveErr)
		}
	}()

	watcher := config.NewConfigWatcher(configFile, config.Load, logger)
	watcher.OnReload(func(fresh config.Options) {
		loggingConfig := config.LoadLoggingConfig(configFile)
		logging.UpdateLevels(loggingConfig.Level, loggingConfig.Modules)
		if fresh.Backend != "" {
			applyBackend(fresh.Backend)
		}
	})
	if watchErr := watcher.Start(); watchErr != nil {
		logger.Warn("Config watching disabled", "error", watchErr)
	} else {
		defer watcher.Stop()
	}

	unsubscribe := events.Subscribe(func(e events.BackendChangedEvent) {
		logger.Info("Conversion backend changed", "requested", e.Requested, "active", e.Active)
	})
	defer unsubscribe()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if runFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runFor)
		defer cancel()
	}

	provider.Start()
	defer provider.Stop()

	if systemd.NotifyReady() {
		systemd.NotifyStatus(fmt.Sprintf("delivering %s frames at %dx%d", targetFormat, width, height))
		defer systemd.NotifyStopping()
	}

	source := newTestPattern(width, height)
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f := provider.AcquireFrame()
				source.fill(f)
				provider.Deliver(f)
			}
		}
	}()

	logger.Info("Pipeline running",
		"size", fmt.Sprintf("%dx%d", width, height), "fps", fps,
		"target", targetFormat.String(), "backend", convert.ActiveBackend().String())

	var grabbed uint64
	for ctx.Err() == nil {
		f := provider.Grab(500 * time.Millisecond)
		if f == nil {
			continue
		}
		grabbed++
		f.Release()
	}

	logger.Info("Pipeline finished", "frames", grabbed)
}

func applyBackend(name string) {
	if b, ok := convert.ParseBackend(name); ok {
		convert.SetBackend(b)
	}
}

func parseTargetFormat(s string) (framecap.PixelFormat, bool) {
	switch s {
	case "rgb24":
		return framecap.PixelFormatRGB24, true
	case "bgr24":
		return framecap.PixelFormatBGR24, true
	case "rgba32":
		return framecap.PixelFormatRGBA32, true
	case "bgra32":
		return framecap.PixelFormatBGRA32, true
	}
	return framecap.PixelFormatUnknown, false
}

// testPattern produces NV12 frames with a moving gradient, standing in
// for a capture device. Scratch buffers are lent to frames the way a
// driver lends mapped memory, so the conversion path sees borrowed
// planes exactly as it would on real hardware.
type testPattern struct {
	width   int
	height  int
	tick    uint64
	scratch sync.Pool
}

func newTestPattern(width, height int) *testPattern {
	return &testPattern{width: width, height: height}
}

func (s *testPattern) fill(f *framecap.Frame) {
	ySize := s.width * s.height
	size := ySize * 3 / 2

	buf, _ := s.scratch.Get().([]byte)
	if len(buf) < size {
		buf = make([]byte, size)
	}
	s.tick++
	shift := byte(s.tick)
	for y := 0; y < s.height; y++ {
		row := buf[y*s.width:]
		for x := 0; x < s.width; x++ {
			row[x] = byte(x) + byte(y) + shift
		}
	}
	uv := buf[ySize:size]
	for i := 0; i < len(uv); i += 2 {
		uv[i] = byte(i) + shift
		uv[i+1] = 255 - byte(i) - shift
	}

	f.Width = s.width
	f.Height = s.height
	f.Format = framecap.PixelFormatNV12v
	f.Planes[0] = buf[:ySize]
	f.Planes[1] = buf[ySize:size]
	f.Planes[2] = nil
	f.Stride = [3]int{s.width, s.width, 0}
	f.SizeInBytes = size
	f.Timestamp = uint64(time.Now().UnixNano())
	f.SetBorrowed(framecap.NewBorrowedBuffer(buf, func() {
		s.scratch.Put(buf)
	}))
}
