package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"corpusdash/internal/logging"
	"corpusdash/internal/services"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("pipeline complete", logging.Int(logging.FieldRows, 42))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"rows":42`) {
		t.Fatalf("expected rows attribute in output, got %q", string(data))
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWithContextAddsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	ctx := services.WithCorpus(context.Background(), "Rentensystem_korpus")
	ctx = services.WithStage(ctx, "date_range")
	logging.WithContext(ctx, logger).Info("stage applied")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"corpus":"Rentensystem_korpus"`) || !strings.Contains(out, `"stage":"date_range"`) {
		t.Fatalf("expected context fields in output, got %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	// Must not panic or write anywhere.
	logger.Error("ignored", logging.Error(nil))
}
