package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCorpusLoad          = errors.New("corpus load error")
	ErrFilterConfiguration = errors.New("filter configuration error")
	ErrSentimentParse      = errors.New("sentiment parse error")
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrExternalTool        = errors.New("external tool error")
)

// Severity classifies how a pipeline error should be handled by the caller.
type Severity int

const (
	// SeverityFatal aborts the current render; no partial output is shown.
	SeverityFatal Severity = iota
	// SeverityWarning is reported to the user while the affected stage
	// degrades to a pass-through.
	SeverityWarning
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later severity classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Classify maps a pipeline error to the severity the caller should apply.
// Configuration mistakes degrade the stage to a pass-through; everything
// else aborts the render.
func Classify(err error) Severity {
	if errors.Is(err, ErrFilterConfiguration) {
		return SeverityWarning
	}
	return SeverityFatal
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
