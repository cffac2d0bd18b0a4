package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ClimateVitals is the reduced weather summary the scorer needs.
type ClimateVitals struct {
	AvgTempC         float64 `json:"avg_temp_c"`
	AnnualRainfallMm float64 `json:"avg_annual_rainfall_mm"`
}

// ClimateProvider fetches weather normals for a location. Absence or
// failure degrades the pipeline to configured defaults, never fails it.
type ClimateProvider interface {
	GetClimate(ctx context.Context, lat, lng float64) (*ClimateVitals, error)
}

// WeatherClient reads current conditions and a 7-day forecast from the
// Open-Meteo API and reduces them to an average temperature plus a rough
// annual rainfall estimate (weekly precipitation × 52).
type WeatherClient struct {
	baseURL string
	client  *http.Client
}

func NewWeatherClient(baseURL string, timeout time.Duration) *WeatherClient {
	return &WeatherClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type openMeteoResponse struct {
	Current struct {
		Temperature2m float64 `json:"temperature_2m"`
	} `json:"current"`
	Daily struct {
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

func (c *WeatherClient) GetClimate(ctx context.Context, lat, lng float64) (*ClimateVitals, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", lat))
	q.Set("longitude", fmt.Sprintf("%f", lng))
	q.Set("current", "temperature_2m")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	q.Set("timezone", "auto")
	q.Set("forecast_days", "7")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather service returned status: %d", resp.StatusCode)
	}

	var data openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	avgTemp := data.Current.Temperature2m
	if len(data.Daily.Temperature2mMax) > 0 && len(data.Daily.Temperature2mMin) > 0 {
		var maxSum, minSum float64
		for _, v := range data.Daily.Temperature2mMax {
			maxSum += v
		}
		for _, v := range data.Daily.Temperature2mMin {
			minSum += v
		}
		avgMax := maxSum / float64(len(data.Daily.Temperature2mMax))
		avgMin := minSum / float64(len(data.Daily.Temperature2mMin))
		avgTemp = (avgMax + avgMin) / 2
	}

	var weeklyPrecip float64
	for _, v := range data.Daily.PrecipitationSum {
		weeklyPrecip += v
	}

	return &ClimateVitals{
		AvgTempC:         avgTemp,
		AnnualRainfallMm: weeklyPrecip * 52,
	}, nil
}
