package lens

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/guhdnews/lacqr-sub000/internal/menu"
	"github.com/guhdnews/lacqr-sub000/internal/pricing"
	"github.com/guhdnews/lacqr-sub000/internal/quote"
	"github.com/guhdnews/lacqr-sub000/internal/storage"
	"github.com/guhdnews/lacqr-sub000/internal/vision"
)

// Storage is where uploaded photos land. *storage.R2Client in production.
type Storage = storage.Uploader

type Service struct {
	repo      Repository
	menus     *menu.Service
	describer vision.Describer
	detector  vision.Detector
	storage   Storage
}

func NewService(
	repo Repository,
	menus *menu.Service,
	describer vision.Describer,
	detector vision.Detector,
	storage Storage,
) *Service {
	return &Service{
		repo:      repo,
		menus:     menus,
		describer: describer,
		detector:  detector,
		storage:   storage,
	}
}

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// --------------------------------------------------
// Submit a photo for analysis (async)
// --------------------------------------------------
func (s *Service) Analyze(
	ctx context.Context,
	techID string,
	file *multipart.FileHeader,
	note string,
) (*Quote, error) {

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}

	id := uuid.New().String()
	key := fmt.Sprintf("quotes/%s/%s%s", techID, id, ext)

	url, err := storage.UploadMultipartFile(ctx, s.storage, key, file)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	q := &Quote{
		ID:       id,
		TechID:   techID,
		ImageURL: url,
		Status:   StatusUploaded,
		Note:     note,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return q, nil
}

// --------------------------------------------------
// Synchronous estimate (configurator path, no photo)
// --------------------------------------------------

// EstimateRequest carries raw signals, or an already-edited selection for
// the manual correction round-trip. When Selection is set the signals are
// ignored.
type EstimateRequest struct {
	Detections   []quote.Detection        `json:"detections"`
	NailPlateBox []float64                `json:"nail_plate_box"`
	Vision       *quote.VisionDescription `json:"vision"`
	Captions     *quote.CaptionHints      `json:"captions"`
	Selection    *quote.ServiceSelection  `json:"selection"`
}

type EstimateResponse struct {
	Selection quote.ServiceSelection `json:"selection"`
	Price     pricing.PriceResult    `json:"price"`
}

func (s *Service) Estimate(
	ctx context.Context,
	techID string,
	req EstimateRequest,
) (*EstimateResponse, error) {

	var sel quote.ServiceSelection
	if req.Selection != nil {
		sel = *req.Selection
	} else {
		sel = quote.Map(req.Detections, req.NailPlateBox, req.Vision, req.Captions)
	}

	m, err := s.menus.Get(ctx, techID)
	if err != nil {
		return nil, err
	}

	return &EstimateResponse{
		Selection: sel,
		Price:     pricing.Calculate(sel, *m),
	}, nil
}

// --------------------------------------------------
// Reprice after a manual edit
// --------------------------------------------------
func (s *Service) Reprice(
	ctx context.Context,
	techID string,
	id string,
	sel quote.ServiceSelection,
) (*Quote, error) {

	q, err := s.repo.GetByID(ctx, id, techID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("quote not found")
	}

	m, err := s.menus.Get(ctx, techID)
	if err != nil {
		return nil, err
	}

	price := pricing.Calculate(sel, *m)
	q.Selection = &sel
	q.Price = &price
	q.Degraded = false

	if err := s.repo.SaveResult(ctx, q); err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	q.Status = StatusReady
	return q, nil
}

func (s *Service) Get(ctx context.Context, techID, id string) (*Quote, error) {
	return s.repo.GetByID(ctx, id, techID)
}

func (s *Service) List(ctx context.Context, techID string) ([]*Quote, error) {
	return s.repo.ListByTech(ctx, techID)
}

// --------------------------------------------------
// Analysis worker
// --------------------------------------------------

// ProcessOne picks ONE pending quote and analyzes it. Provider failures
// degrade to the default selection rather than failing the quote; only a
// repository error stops the record from reaching QUOTE_READY.
func (s *Service) ProcessOne(ctx context.Context) error {
	q, err := s.repo.ClaimPending(ctx)
	if err != nil {
		return err
	}
	if q == nil {
		// No pending jobs is NOT an error
		return nil
	}

	var detections []quote.Detection
	var nailBox []float64
	var captions *quote.CaptionHints
	degraded := false

	det, err := s.detector.Detect(ctx, q.ImageURL)
	if err != nil {
		log.Printf("ANALYZE_DETECT_FAILED id=%s err=%v", q.ID, err)
		degraded = true
	} else {
		detections = det.AdornmentObjects()
		nailBox = det.NailPlateBox()
		captions = det.CaptionHints()
	}

	desc, err := s.describer.Describe(ctx, q.ImageURL)
	if err != nil {
		log.Printf("ANALYZE_DESCRIBE_FAILED id=%s err=%v", q.ID, err)
		degraded = true
		desc = nil
	}

	sel := quote.Map(detections, nailBox, desc, captions)

	m, err := s.menus.Get(ctx, q.TechID)
	if err != nil {
		reason := fmt.Sprintf("load menu: %v", err)
		_ = s.repo.MarkFailed(ctx, q.ID, reason)
		return nil
	}

	// The provider may not guess a duration; fill it from the menu's
	// per-item minutes so the hourly floor has something to work with.
	if sel.EstimatedDuration == 0 {
		sel.EstimatedDuration = pricing.EstimateDuration(sel, *m)
	}

	price := pricing.Calculate(sel, *m)
	q.Selection = &sel
	q.Price = &price
	q.Degraded = degraded

	if err := s.repo.SaveResult(ctx, q); err != nil {
		_ = s.repo.MarkFailed(ctx, q.ID, fmt.Sprintf("save result: %v", err))
		return nil
	}

	log.Printf("ANALYZE_DONE id=%s total=%.0f degraded=%v", q.ID, price.Total, degraded)
	return nil
}

// RunWorker polls for pending quotes until the context is cancelled.
func (s *Service) RunWorker(ctx context.Context, interval time.Duration) {
	log.Println("quote analysis worker started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("quote analysis worker stopped")
			return
		case <-ticker.C:
			if err := s.ProcessOne(ctx); err != nil {
				log.Printf("ANALYZE_CLAIM_FAILED err=%v", err)
			}
		}
	}
}
