// Package clients holds HTTP clients for the external collaborators: the
// hosted land-classification model and the weather provider.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/geo"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// InferenceProvider yields one land-classification prediction per sample
// coordinate. Implementations may fail per call; the pipeline proceeds
// with the remaining samples.
type InferenceProvider interface {
	Predict(ctx context.Context, c geo.Coordinate, zoom int) (*models.PredictionSample, error)
}

// InferenceClient talks to the hosted super-resolution + classification
// endpoint. The endpoint fetches its own imagery for the coordinate, so
// the request carries only location and zoom.
type InferenceClient struct {
	endpoint string
	client   *http.Client
}

func NewInferenceClient(endpoint string, timeout time.Duration) *InferenceClient {
	return &InferenceClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type inferenceRequest struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

type inferenceResponse struct {
	LandClass   string             `json:"land_class"`
	Confidence  float64            `json:"confidence"`
	Predictions map[string]float64 `json:"predictions"`
}

func (c *InferenceClient) Predict(ctx context.Context, coord geo.Coordinate, zoom int) (*models.PredictionSample, error) {
	body, err := json.Marshal(inferenceRequest{Lat: coord.Lat, Lng: coord.Lng, Zoom: zoom})
	if err != nil {
		return nil, fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("create inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference service returned status: %d", resp.StatusCode)
	}

	var out inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}

	return &models.PredictionSample{
		LandClass:  out.LandClass,
		Confidence: out.Confidence,
		PerClass:   out.Predictions,
	}, nil
}
