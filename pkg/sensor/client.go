package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// SnapshotProvider returns the sensor metrics recorded on one machine during
// a set's time window. Failures are soft: a set can always be logged without
// a snapshot.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, machineID string, start, end time.Time) map[string]interface{}
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ SnapshotProvider = &Client{}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type metricsResponse struct {
	Data map[string]interface{} `json:"data"`
}

// Snapshot fetches the metrics the machine recorded between start and end.
// An empty machineID skips the fetch entirely; any failure returns an empty
// map so set logging never blocks on the sensor feed.
func (c *Client) Snapshot(ctx context.Context, machineID string, start, end time.Time) map[string]interface{} {
	if machineID == "" {
		return map[string]interface{}{}
	}

	params := url.Values{}
	params.Set("machine_id", machineID)
	params.Set("start_time", start.Format(time.RFC3339))
	params.Set("end_time", end.Format(time.RFC3339))

	endpoint := fmt.Sprintf("%s/api/sensor/metrics?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return map[string]interface{}{}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return map[string]interface{}{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return map[string]interface{}{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]interface{}{}
	}

	var res metricsResponse
	if err := json.Unmarshal(body, &res); err != nil || res.Data == nil {
		return map[string]interface{}{}
	}

	return res.Data
}
