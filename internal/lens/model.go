package lens

import (
	"time"

	"github.com/guhdnews/lacqr-sub000/internal/pricing"
	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

// Quote lifecycle. A degraded analysis (provider down, unusable image)
// still lands on QUOTE_READY with the default selection so the tech can
// correct it by hand; FAILED is reserved for records we could not price
// at all.
const (
	StatusUploaded  = "QUOTE_UPLOADED"
	StatusAnalyzing = "ANALYZING"
	StatusReady     = "QUOTE_READY"
	StatusFailed    = "FAILED"
)

// Quote is one inspiration-photo quote request and its analysis result.
type Quote struct {
	ID        string                  `json:"id"`
	TechID    string                  `json:"tech_id"`
	ImageURL  string                  `json:"image_url"`
	Status    string                  `json:"status"`
	Note      string                  `json:"note,omitempty"`
	Degraded  bool                    `json:"degraded,omitempty"`
	Error     string                  `json:"error,omitempty"`
	Selection *quote.ServiceSelection `json:"selection,omitempty"`
	Price     *pricing.PriceResult    `json:"price,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}
