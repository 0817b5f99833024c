package vision

import (
	"context"

	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

// Describer is the vision-language provider: it looks at an inspiration
// photo and returns a structured guess about the set.
type Describer interface {
	Describe(ctx context.Context, imageURL string) (*quote.VisionDescription, error)
}

// Detector is the object-detection provider (the YOLO inference service).
type Detector interface {
	Detect(ctx context.Context, imageURL string) (*DetectResult, error)
}
