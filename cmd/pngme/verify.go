package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/DWaterhouse1/pngme/pngme"
)

// cmdVerify structurally checks one or more PNG files in parallel. With
// -fix, files that fail only their CRC checks are rewritten with repaired
// checksums.
func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fix := fs.Bool("fix", false, "rewrite files whose chunk CRCs are wrong")
	verbose := fs.Bool("v", false, "log every file checked, not just failures")
	fs.Parse(args)

	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("usage: pngme verify [-fix] [-v] <file>...")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range paths {
		path := path
		g.Go(func() error {
			return verifyFile(logger, path, *fix)
		})
	}
	return g.Wait()
}

func verifyFile(logger *slog.Logger, path string, fix bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	img, err := pngme.Decode(raw)
	if err == nil {
		logger.Info("ok", "file", path, "chunks", len(img.Chunks()))
		return nil
	}
	if !errors.Is(err, pngme.ErrCRCMismatch) {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	if !fix {
		return fmt.Errorf("verifying %s: %w", path, err)
	}

	// Only the CRCs are wrong; a lenient decode recomputes them and a
	// rewrite makes the file consistent again.
	repaired, err := pngme.Decode(raw, pngme.WithLenientCRC())
	if err != nil {
		return fmt.Errorf("repairing %s: %w", path, err)
	}
	if err := os.WriteFile(path, repaired.Bytes(), 0o644); err != nil {
		return fmt.Errorf("repairing %s: %w", path, err)
	}

	logger.Warn("repaired chunk CRCs", "file", path, "chunks", len(repaired.Chunks()))
	return nil
}
