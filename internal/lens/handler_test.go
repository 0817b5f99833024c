package lens

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guhdnews/lacqr-sub000/internal/menu"
	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(
		NewInMemoryRepository(),
		menu.NewService(menu.NewInMemoryRepository()),
		&stubDescriber{},
		&stubDetector{},
		&stubStorage{},
	)
	h := NewHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", "tech-1")
		c.Next()
	})
	router.POST("/quotes/analyze", h.Analyze)
	router.POST("/quotes/estimate", h.Estimate)
	router.GET("/quotes", h.List)
	router.GET("/quotes/:id", h.Get)
	router.GET("/quotes/:id/status", h.Status)
	router.PATCH("/quotes/:id", h.Reprice)

	return router, svc
}

func multipartImage(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake-image-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = w.WriteField("note", "for saturday")
	_ = w.Close()
	return &buf, w.FormDataContentType()
}

func TestAnalyzeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := multipartImage(t, "image", "inspo.jpg")
	req := httptest.NewRequest("POST", "/quotes/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		QuoteID string `json:"quote_id"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.QuoteID == "" {
		t.Error("expected quote_id in response")
	}
	if resp.Status != StatusUploaded {
		t.Errorf("status=%q, want %q", resp.Status, StatusUploaded)
	}
}

func TestAnalyzeEndpoint_MissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := multipartImage(t, "wrong_field", "inspo.jpg")
	req := httptest.NewRequest("POST", "/quotes/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEstimateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	sel := quote.DefaultSelection()
	sel.Base.System = quote.SystemHardGel
	sel.Base.Length = quote.LengthXXL
	payload, _ := json.Marshal(EstimateRequest{Selection: &sel})

	req := httptest.NewRequest("POST", "/quotes/estimate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad estimate JSON: %v", err)
	}
	// Hard Gel 60 + XXL 25 on the default menu.
	if resp.Price.Total != 85 {
		t.Errorf("total=%v, want 85", resp.Price.Total)
	}
}

func TestEstimateEndpoint_BadBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("POST", "/quotes/estimate", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestStatusAndGetEndpoints(t *testing.T) {
	router, svc := newTestRouter(t)

	q, err := svc.Analyze(context.Background(), "tech-1", fileHeader(t, "a.jpg"), "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/quotes/"+q.ID+"/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), StatusUploaded) {
		t.Errorf("status body missing %q: %s", StatusUploaded, w.Body.String())
	}

	if err := svc.ProcessOne(context.Background()); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	req = httptest.NewRequest("GET", "/quotes/"+q.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got Quote
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad quote JSON: %v", err)
	}
	if got.Status != StatusReady {
		t.Errorf("status=%q, want %q", got.Status, StatusReady)
	}
	if got.Selection == nil || got.Price == nil {
		t.Error("processed quote should include selection and price")
	}
}

func TestGetEndpoint_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/quotes/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRepriceEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)

	q, err := svc.Analyze(context.Background(), "tech-1", fileHeader(t, "a.jpg"), "")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if err := svc.ProcessOne(context.Background()); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	sel := quote.DefaultSelection()
	sel.Art.Level = quote.ArtLevel3
	payload, _ := json.Marshal(sel)

	req := httptest.NewRequest("PATCH", "/quotes/"+q.ID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got Quote
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad quote JSON: %v", err)
	}
	if got.Price.Breakdown.Art != 30 {
		t.Errorf("art=%v, want 30 for Level 3", got.Price.Breakdown.Art)
	}
}
