package services_test

import (
	"context"
	"testing"

	"corpusdash/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithCorpus(ctx, "influencer_korpus")
	ctx = services.WithStage(ctx, "keyword")
	ctx = services.WithVideoID(ctx, "abc123")
	ctx = services.WithRequestID(ctx, "req-123")

	if name, ok := services.CorpusFromContext(ctx); !ok || name != "influencer_korpus" {
		t.Fatalf("unexpected corpus: %v %v", name, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "keyword" {
		t.Fatalf("unexpected stage: %v %v", stage, ok)
	}
	if id, ok := services.VideoIDFromContext(ctx); !ok || id != "abc123" {
		t.Fatalf("unexpected video id: %v %v", id, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithStage(ctx, "")
	ctx = services.WithCorpus(ctx, "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected no stage value")
	}
	if _, ok := services.CorpusFromContext(ctx); ok {
		t.Fatal("expected no corpus value")
	}
}
