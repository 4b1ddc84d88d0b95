package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/object-extract-mcp/internal/config"
	"github.com/ironsheep/object-extract-mcp/internal/export"
)

func writeSheet(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 120, 60))
	for _, r := range []image.Rectangle{image.Rect(5, 5, 35, 35), image.Rect(60, 10, 100, 50)} {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetNRGBA(x, y, color.NRGBA{200, 120, 0, 255})
			}
		}
	}

	path := filepath.Join(dir, "icons.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func testConfig(outDir string) *config.Config {
	return &config.Config{Threshold: 100, MinDimension: 10, OutputDir: outDir, S3Region: "eu-west-2"}
}

func noS3(region, bucket, prefix string) (export.Sink, error) {
	panic("S3 sink should not be used")
}

func TestExtractCmd_Directory(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeSheet(t, dir)
	outDir := filepath.Join(dir, "out")
	previewPath := filepath.Join(dir, "preview.png")

	var stdout bytes.Buffer
	err := extractCmd([]string{"-out", outDir, "-preview", previewPath, imgPath}, testConfig("."), &stdout, noS3)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "2 regions detected, 2 objects extracted, 0 too small") {
		t.Errorf("summary: got %q", stdout.String())
	}
	for _, name := range []string{"icons_objekt_1.png", "icons_objekt_2.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	f, err := os.Open(previewPath)
	if err != nil {
		t.Fatalf("preview missing: %v", err)
	}
	defer f.Close()
	sheet, err := png.Decode(f)
	if err != nil {
		t.Fatalf("preview is not a PNG: %v", err)
	}
	if sheet.Bounds().Dx() != 256 || sheet.Bounds().Dy() != 128 {
		t.Errorf("preview size: got %v, want 256x128", sheet.Bounds())
	}
}

type recordingSink struct {
	names []string
}

func (r *recordingSink) Put(ctx context.Context, name string, img image.Image) (string, error) {
	r.names = append(r.names, name)
	return "s3://bucket/" + name, nil
}

func TestExtractCmd_Bucket(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeSheet(t, dir)

	sink := &recordingSink{}
	var gotBucket, gotPrefix string
	newSink := func(region, bucket, prefix string) (export.Sink, error) {
		gotBucket, gotPrefix = bucket, prefix
		return sink, nil
	}

	var stdout bytes.Buffer
	if err := extractCmd([]string{"-bucket", "sprites", "-prefix", "p", imgPath}, testConfig(dir), &stdout, newSink); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if gotBucket != "sprites" || gotPrefix != "p" {
		t.Errorf("sink: got bucket %q prefix %q", gotBucket, gotPrefix)
	}
	if len(sink.names) != 2 {
		t.Errorf("uploads: got %v", sink.names)
	}
	if !strings.Contains(stdout.String(), "s3://bucket/icons_objekt_2.png") {
		t.Errorf("output should list locations, got %q", stdout.String())
	}
}

func TestExtractCmd_NothingFound(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeSheet(t, dir)
	outDir := filepath.Join(dir, "out")

	var stdout bytes.Buffer
	if err := extractCmd([]string{"-min", "50", "-out", outDir, imgPath}, testConfig(dir), &stdout, noS3); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "0 objects extracted, 2 too small") {
		t.Errorf("summary: got %q", stdout.String())
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("nothing should be written for an empty result")
	}
}

func TestExtractCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeSheet(t, dir)

	tests := []struct {
		name string
		args []string
	}{
		{"no file", []string{}},
		{"two files", []string{imgPath, imgPath}},
		{"missing file", []string{filepath.Join(dir, "missing.png")}},
		{"bad threshold", []string{"-threshold", "3", imgPath}},
		{"unknown flag", []string{"-bogus", imgPath}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := extractCmd(tt.args, testConfig(dir), &stdout, noS3); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
