package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/object-extract-mcp/internal/config"
	"github.com/ironsheep/object-extract-mcp/internal/export"
	"github.com/ironsheep/object-extract-mcp/internal/extract"
	"github.com/ironsheep/object-extract-mcp/internal/imaging"
)

const extractUsage = `Usage: objextract-mcp extract [-threshold N] [-min N] [-out DIR] [-bucket B] [-prefix P] [-preview FILE] image.png

Cuts the objects of image.png out along its alpha channel and writes them as
image_objekt_1.png, image_objekt_2.png, ... in reading order.
`

// runExtract is the one-shot command line extraction.
func runExtract(args []string, cfg *config.Config) error {
	return extractCmd(args, cfg, os.Stdout, func(region, bucket, prefix string) (export.Sink, error) {
		return export.NewS3Sink(region, bucket, prefix)
	})
}

func extractCmd(args []string, cfg *config.Config, stdout io.Writer, newS3Sink func(region, bucket, prefix string) (export.Sink, error)) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), extractUsage)
		fs.PrintDefaults()
	}
	threshold := fs.Int("threshold", cfg.Threshold, "alpha threshold (10-255)")
	minDim := fs.Int("min", cfg.MinDimension, "minimum object width and height in pixels")
	outDir := fs.String("out", cfg.OutputDir, "output directory")
	bucket := fs.String("bucket", cfg.S3Bucket, "upload to this S3 bucket instead of -out")
	prefix := fs.String("prefix", cfg.S3Prefix, "S3 key prefix")
	preview := fs.String("preview", "", "also write a contact sheet of the objects to this PNG file")
	verbose := fs.Bool("v", cfg.Debug(), "verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one image file")
	}
	path := fs.Arg(0)

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", 0)
	}

	src, err := extract.Open(imaging.NewSourceCache(), path)
	if err != nil {
		return err
	}

	session := extract.NewSession(logger)
	base := export.BaseName(path)
	if err := session.Load(src.Image, base); err != nil {
		return err
	}

	result, err := session.Run(extract.Params{Threshold: *threshold, MinDimension: *minDim})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d regions detected, %d objects extracted, %d too small\n",
		path, result.Detected, result.Count(), result.Discarded)

	if result.IsEmpty() {
		return nil
	}

	if *preview != "" {
		images := make([]image.Image, result.Count())
		for i, obj := range result.Objects {
			images[i] = obj.Image
		}
		sheet := imaging.ContactSheet(images, imaging.DefaultThumbnailSize, imaging.DefaultSheetColumns, color.Transparent)
		if err := imgio.Save(*preview, sheet, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		logger.Printf("Wrote preview %s", *preview)
	}

	var sink export.Sink = export.DirSink{Dir: *outDir}
	if *bucket != "" {
		sink, err = newS3Sink(cfg.S3Region, *bucket, *prefix)
		if err != nil {
			return err
		}
	}

	locations, err := export.Export(context.Background(), sink, base, result.Objects)
	if err != nil {
		return err
	}
	session.Clear()

	for _, loc := range locations {
		fmt.Fprintln(stdout, loc)
	}
	return nil
}
