package config

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"OBJEXTRACT_LOG_LEVEL", "OBJEXTRACT_THRESHOLD", "OBJEXTRACT_MIN_DIMENSION",
		"OBJEXTRACT_OUTPUT_DIR", "OBJEXTRACT_S3_BUCKET", "OBJEXTRACT_S3_PREFIX", "OBJEXTRACT_S3_REGION",
	} {
		t.Setenv(key, "")
	}

	cfg := Load(nil)

	if cfg.LogLevel != "info" || cfg.Debug() {
		t.Errorf("LogLevel: got %s", cfg.LogLevel)
	}
	if cfg.Threshold != 100 {
		t.Errorf("Threshold: got %d, want 100", cfg.Threshold)
	}
	if cfg.MinDimension != 10 {
		t.Errorf("MinDimension: got %d, want 10", cfg.MinDimension)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir: got %s, want .", cfg.OutputDir)
	}
	if cfg.S3Bucket != "" || cfg.S3Prefix != "" {
		t.Errorf("S3: got bucket %q prefix %q, want empty", cfg.S3Bucket, cfg.S3Prefix)
	}
	if cfg.S3Region != "eu-west-2" {
		t.Errorf("S3Region: got %s, want eu-west-2", cfg.S3Region)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("OBJEXTRACT_LOG_LEVEL", "DEBUG")
	t.Setenv("OBJEXTRACT_THRESHOLD", "60")
	t.Setenv("OBJEXTRACT_MIN_DIMENSION", " 4 ")
	t.Setenv("OBJEXTRACT_OUTPUT_DIR", "/tmp/objects")
	t.Setenv("OBJEXTRACT_S3_BUCKET", "sprites")
	t.Setenv("OBJEXTRACT_S3_PREFIX", "run1")
	t.Setenv("OBJEXTRACT_S3_REGION", "us-east-1")

	cfg := Load(nil)

	if !cfg.Debug() {
		t.Error("Debug should be enabled")
	}
	if cfg.Threshold != 60 || cfg.MinDimension != 4 {
		t.Errorf("numbers: got threshold %d min %d, want 60/4", cfg.Threshold, cfg.MinDimension)
	}
	if cfg.OutputDir != "/tmp/objects" {
		t.Errorf("OutputDir: got %s", cfg.OutputDir)
	}
	if cfg.S3Bucket != "sprites" || cfg.S3Prefix != "run1" || cfg.S3Region != "us-east-1" {
		t.Errorf("S3: got %s/%s/%s", cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region)
	}
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("OBJEXTRACT_THRESHOLD", "high")
	t.Setenv("OBJEXTRACT_MIN_DIMENSION", "")

	var buf bytes.Buffer
	cfg := Load(log.New(&buf, "", 0))

	if cfg.Threshold != 100 {
		t.Errorf("Threshold: got %d, want default 100", cfg.Threshold)
	}
	if !strings.Contains(buf.String(), "OBJEXTRACT_THRESHOLD") {
		t.Errorf("expected a warning naming the variable, got %q", buf.String())
	}
}
