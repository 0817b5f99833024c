package lens

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/guhdnews/lacqr-sub000/internal/menu"
	"github.com/guhdnews/lacqr-sub000/internal/quote"
	"github.com/guhdnews/lacqr-sub000/internal/vision"
)

type stubStorage struct {
	uploads     int
	contentType string
	failed      bool
}

func (s *stubStorage) Upload(_ context.Context, key string, _ io.Reader, contentType string) (string, error) {
	if s.failed {
		return "", errors.New("storage down")
	}
	s.uploads++
	s.contentType = contentType
	return "https://cdn.example.com/" + key, nil
}

type stubDescriber struct {
	desc *quote.VisionDescription
	err  error
}

func (s *stubDescriber) Describe(_ context.Context, _ string) (*quote.VisionDescription, error) {
	return s.desc, s.err
}

type stubDetector struct {
	result *vision.DetectResult
	err    error
}

func (s *stubDetector) Detect(_ context.Context, _ string) (*vision.DetectResult, error) {
	return s.result, s.err
}

func newTestService(describer vision.Describer, detector vision.Detector) (*Service, *InMemoryRepository) {
	svc, repo, _ := newTestServiceStorage(describer, detector)
	return svc, repo
}

func newTestServiceStorage(describer vision.Describer, detector vision.Detector) (*Service, *InMemoryRepository, *stubStorage) {
	repo := NewInMemoryRepository()
	menus := menu.NewService(menu.NewInMemoryRepository())
	store := &stubStorage{}
	svc := NewService(repo, menus, describer, detector, store)
	return svc, repo, store
}

// fileHeader builds a real multipart file header the way gin's FormFile
// would produce it.
func fileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("fake-bytes"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestAnalyze_CreatesUploadedQuote(t *testing.T) {
	svc, repo, store := newTestServiceStorage(&stubDescriber{}, &stubDetector{})

	q, err := svc.Analyze(context.Background(), "tech-1",
		fileHeader(t, "inspo.jpg"), "client wants red")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if q.Status != StatusUploaded {
		t.Errorf("status=%q, want %q", q.Status, StatusUploaded)
	}
	if !strings.HasPrefix(q.ImageURL, "https://cdn.example.com/quotes/tech-1/") {
		t.Errorf("unexpected image url %q", q.ImageURL)
	}

	stored, err := repo.GetByID(context.Background(), q.ID, "tech-1")
	if err != nil || stored == nil {
		t.Fatalf("quote not persisted: %v", err)
	}
	if stored.Note != "client wants red" {
		t.Errorf("note=%q", stored.Note)
	}
	// The multipart header's content type must reach the store.
	if store.contentType == "" {
		t.Error("expected the upload to carry the form part's content type")
	}
}

func TestAnalyze_RejectsNonImage(t *testing.T) {
	svc, _ := newTestService(&stubDescriber{}, &stubDetector{})

	_, err := svc.Analyze(context.Background(), "tech-1",
		fileHeader(t, "menu.pdf"), "")
	if err == nil {
		t.Fatal("expected pdf upload to be rejected")
	}
}

func TestProcessOne_NoPendingIsNotError(t *testing.T) {
	svc, _ := newTestService(&stubDescriber{}, &stubDetector{})

	if err := svc.ProcessOne(context.Background()); err != nil {
		t.Fatalf("unexpected error with no pending jobs: %v", err)
	}
}

func TestProcessOne_FullAnalysis(t *testing.T) {
	describer := &stubDescriber{desc: &quote.VisionDescription{
		Shape:                "stiletto",
		System:               "acrylic",
		EstimatedLength:      "Long",
		EstimatedTimeMinutes: 120,
		ArtNotes:             "chrome french tips",
	}}
	detector := &stubDetector{result: &vision.DetectResult{
		Objects: []quote.Detection{
			{Label: "nail", Box: []float64{0, 0, 100, 250}, Confidence: 0.9},
			{Label: "charm", Box: []float64{10, 10, 20, 20}, Confidence: 0.8},
		},
	}}
	svc, repo := newTestService(describer, detector)

	q, err := svc.Analyze(context.Background(), "tech-1", fileHeader(t, "a.png"), "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if err := svc.ProcessOne(context.Background()); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	got, err := repo.GetByID(context.Background(), q.ID, "tech-1")
	if err != nil || got == nil {
		t.Fatalf("quote missing after processing: %v", err)
	}
	if got.Status != StatusReady {
		t.Fatalf("status=%q, want %q (error=%q)", got.Status, StatusReady, got.Error)
	}
	if got.Degraded {
		t.Error("analysis should not be degraded with healthy providers")
	}
	if got.Selection == nil || got.Price == nil {
		t.Fatal("selection and price should be populated")
	}
	if got.Selection.Base.Shape != quote.ShapeStiletto {
		t.Errorf("shape=%q, want Stiletto", got.Selection.Base.Shape)
	}
	if got.Selection.Base.Length != quote.LengthLong {
		t.Errorf("length=%q, want Long", got.Selection.Base.Length)
	}
	if got.Selection.Bling.XLCharmsCount != 1 {
		t.Errorf("charms=%d, want 1", got.Selection.Bling.XLCharmsCount)
	}
	if got.Price.Total <= 0 {
		t.Errorf("total=%v, want positive", got.Price.Total)
	}
}

func TestProcessOne_DegradesWhenProvidersFail(t *testing.T) {
	svc, repo := newTestService(
		&stubDescriber{err: errors.New("llm timeout")},
		&stubDetector{err: errors.New("inference cold start")},
	)

	q, err := svc.Analyze(context.Background(), "tech-1", fileHeader(t, "a.jpg"), "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if err := svc.ProcessOne(context.Background()); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), q.ID, "tech-1")
	if got.Status != StatusReady {
		t.Fatalf("status=%q, want %q even when providers fail", got.Status, StatusReady)
	}
	if !got.Degraded {
		t.Error("expected degraded flag")
	}
	if got.Selection == nil {
		t.Fatal("expected default selection on degraded analysis")
	}
	if got.Selection.Base.System != quote.SystemAcrylic || got.Selection.Base.Shape != quote.ShapeCoffin {
		t.Errorf("expected default base, got %+v", got.Selection.Base)
	}
	// Default set primes the duration from the menu, so the price carries
	// the hourly floor instead of a bare sum.
	if got.Selection.EstimatedDuration <= 0 {
		t.Error("expected duration pre-filled from menu minutes")
	}
}

func TestProcessOne_DurationPreFillOnlyWhenMissing(t *testing.T) {
	describer := &stubDescriber{desc: &quote.VisionDescription{
		EstimatedTimeMinutes: 200,
	}}
	svc, repo := newTestService(describer, &stubDetector{})

	q, _ := svc.Analyze(context.Background(), "tech-1", fileHeader(t, "a.jpg"), "")
	if err := svc.ProcessOne(context.Background()); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), q.ID, "tech-1")
	if got.Selection.EstimatedDuration != 200 {
		t.Errorf("duration=%v, want provider's 200 untouched", got.Selection.EstimatedDuration)
	}
}

func TestEstimate_SelectionPassthrough(t *testing.T) {
	svc, _ := newTestService(&stubDescriber{}, &stubDetector{})

	sel := quote.DefaultSelection()
	resp, err := svc.Estimate(context.Background(), "tech-1", EstimateRequest{Selection: &sel})
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	// Default acrylic short set on the default menu: base only, no floor
	// because the caller supplied no duration.
	if resp.Price.Total != 55 {
		t.Errorf("total=%v, want 55", resp.Price.Total)
	}
}

func TestEstimate_MapsRawSignals(t *testing.T) {
	svc, _ := newTestService(&stubDescriber{}, &stubDetector{})

	resp, err := svc.Estimate(context.Background(), "tech-1", EstimateRequest{
		Vision: &quote.VisionDescription{
			Shape:           "almond",
			System:          "gel x",
			EstimatedLength: "Medium",
		},
	})
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	if resp.Selection.Base.Shape != quote.ShapeAlmond {
		t.Errorf("shape=%q, want Almond", resp.Selection.Base.Shape)
	}
	if resp.Selection.Base.System != quote.SystemGelX {
		t.Errorf("system=%q, want Gel-X", resp.Selection.Base.System)
	}
	// Gel-X base 65, Medium surcharge 0 on the default menu.
	if resp.Price.Total != 65 {
		t.Errorf("total=%v, want 65", resp.Price.Total)
	}
}

func TestReprice_RecalculatesAndSaves(t *testing.T) {
	svc, repo := newTestService(&stubDescriber{}, &stubDetector{})

	q, _ := svc.Analyze(context.Background(), "tech-1", fileHeader(t, "a.jpg"), "")
	if err := svc.ProcessOne(context.Background()); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	sel := quote.DefaultSelection()
	sel.Base.System = quote.SystemGelX
	sel.Base.Length = quote.LengthXL

	updated, err := svc.Reprice(context.Background(), "tech-1", q.ID, sel)
	if err != nil {
		t.Fatalf("reprice failed: %v", err)
	}
	if updated.Price.Breakdown.Base != 65 {
		t.Errorf("base=%v, want 65 for Gel-X", updated.Price.Breakdown.Base)
	}
	if updated.Price.Breakdown.Length != 15 {
		t.Errorf("length=%v, want 15 for XL", updated.Price.Breakdown.Length)
	}

	stored, _ := repo.GetByID(context.Background(), q.ID, "tech-1")
	if stored.Selection.Base.System != quote.SystemGelX {
		t.Errorf("stored system=%q, want Gel-X", stored.Selection.Base.System)
	}
}

func TestReprice_UnknownQuote(t *testing.T) {
	svc, _ := newTestService(&stubDescriber{}, &stubDetector{})

	_, err := svc.Reprice(context.Background(), "tech-1", "missing-id", quote.DefaultSelection())
	if err == nil {
		t.Fatal("expected error for unknown quote")
	}
}

func TestListByTech_IsolatesTechs(t *testing.T) {
	svc, _ := newTestService(&stubDescriber{}, &stubDetector{})

	for i := 0; i < 3; i++ {
		if _, err := svc.Analyze(context.Background(), "tech-1",
			fileHeader(t, fmt.Sprintf("a%d.jpg", i)), ""); err != nil {
			t.Fatalf("analyze failed: %v", err)
		}
	}
	if _, err := svc.Analyze(context.Background(), "tech-2", fileHeader(t, "b.jpg"), ""); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	mine, err := svc.List(context.Background(), "tech-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 3 {
		t.Errorf("len=%d, want 3", len(mine))
	}

	other, _ := svc.Get(context.Background(), "tech-2", mine[0].ID)
	if other != nil {
		t.Error("tech-2 should not see tech-1's quote")
	}
}
