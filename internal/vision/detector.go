package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DetectorClient calls the GPU inference endpoint (custom YOLO + caption
// model behind one POST route).
type DetectorClient struct {
	endpoint string
	client   *http.Client
}

func NewDetectorClient() *DetectorClient {
	return &DetectorClient{
		endpoint: os.Getenv("DETECTOR_ENDPOINT"),
		client: &http.Client{
			// Cold start on the GPU side can take a while.
			Timeout: 120 * time.Second,
		},
	}
}

func (d *DetectorClient) Detect(ctx context.Context, imageURL string) (*DetectResult, error) {
	if d.endpoint == "" {
		return nil, errors.New("missing DETECTOR_ENDPOINT")
	}
	if imageURL == "" {
		return nil, errors.New("empty image url")
	}

	payload, err := json.Marshal(map[string]string{"image_url": imageURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector error: %s", string(raw))
	}

	var result DetectResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.New("invalid detector JSON output")
	}

	return &result, nil
}
