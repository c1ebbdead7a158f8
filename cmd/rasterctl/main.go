// Command rasterctl applies lvraster operations to an image file.
//
// Usage:
//
//	rasterctl -in frog.jpg -op halftone -out halftone.png
//	rasterctl -in frog.jpg -op grayscale,gaussian,rot90 -out out.png -workers 8
//	rasterctl -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvraster/convolve"
	"github.com/katalvlaran/lvraster/imageio"
	"github.com/katalvlaran/lvraster/logger"
	"github.com/katalvlaran/lvraster/ops"
	"github.com/katalvlaran/lvraster/pixel"
)

var (
	in = flag.String(
		"in",
		"",
		"Input image file.",
	)
	out = flag.String(
		"out",
		"",
		"Output image file. Defaults to <first op>.png.",
	)
	op = flag.String(
		"op",
		"",
		"Comma-separated operations, applied left to right.",
	)
	format = flag.String(
		"format",
		"",
		"Output format (png, jpeg, gif, bmp, tiff). Defaults to the -out extension.",
	)
	order = flag.String(
		"order",
		"rgb",
		"Channel order of the decoded buffer (rgb or bgr).",
	)
	workers = flag.Int(
		"workers",
		runtime.NumCPU(),
		"Goroutines used by convolution kernels.",
	)
	verbose = flag.Bool(
		"v",
		false,
		"Debug logging.",
	)
	list = flag.Bool(
		"list",
		false,
		"Print the operation names and exit.",
	)
)

func main() {
	flag.Parse()
	if code := run(); code != 0 {
		os.Exit(code)
	}
}

func run() int {
	if *list {
		for _, name := range ops.Names() {
			fmt.Println(name)
		}
		return 0
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ctx := logger.SetContext(context.Background(), slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	ctx = logger.With(ctx, "run", uuid.New().String())

	cfg, err := parseConfig()
	if err != nil {
		logger.For(ctx).Error("Invalid flags", "err", err)
		flag.Usage()
		return 2
	}
	if err := process(ctx, cfg); err != nil {
		logger.For(ctx).Error("Processing failed", "err", err, "in", cfg.in, "ops", cfg.ops)
		return 1
	}
	return 0
}

type config struct {
	in, out, format string
	ops             []string
	order           pixel.ChannelOrder
	workers         int
}

func parseConfig() (config, error) {
	cfg := config{in: *in, out: *out, format: *format, workers: *workers}
	if cfg.in == "" {
		return cfg, errors.New("-in is required")
	}
	for _, name := range strings.Split(*op, ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.ops = append(cfg.ops, name)
		}
	}
	if len(cfg.ops) == 0 {
		return cfg, errors.New("-op is required")
	}
	for _, name := range cfg.ops {
		if _, err := ops.Lookup(name); err != nil {
			return cfg, err
		}
	}
	if cfg.workers < 1 {
		return cfg, fmt.Errorf("-workers must be >= 1, got %d", cfg.workers)
	}
	o, err := pixel.ParseOrder(*order)
	if err != nil {
		return cfg, err
	}
	cfg.order = o
	if cfg.out == "" {
		cfg.out = cfg.ops[0] + ".png"
	}
	if cfg.format == "" {
		if cfg.format, err = imageio.FormatFromPath(cfg.out); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func process(ctx context.Context, cfg config) error {
	log := logger.For(ctx)

	f, err := os.Open(cfg.in)
	if err != nil {
		return err
	}
	defer f.Close()
	src, decoded, err := imageio.Decode(f, pixel.WithOrder(cfg.order))
	if err != nil {
		return err
	}
	log.Debug(
		"Decoded image",
		"format", decoded,
		"height", src.Height(),
		"width", src.Width(),
		"depth", src.Depth(),
	)

	cur := src
	for _, name := range cfg.ops {
		start := time.Now()
		next, err := ops.Apply(name, cur, convolve.WithWorkers(cfg.workers))
		if err != nil {
			return err
		}
		log.Info(
			"Applied operation",
			"op", name,
			"took", time.Since(start),
			"height", next.Height(),
			"width", next.Width(),
		)
		cur = next
	}

	w, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	if err := imageio.Encode(w, cur, cfg.format); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	log.Info("Wrote image", "out", cfg.out, "format", cfg.format)
	return nil
}
