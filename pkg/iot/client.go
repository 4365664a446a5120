package iot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// DatasetSourceLive marks estimates backed by real predictions.
	DatasetSourceLive = "live"
	// DatasetSourceFallback marks estimates where the data service was
	// unreachable and the system failed open.
	DatasetSourceFallback = "fallback"
)

// Machine is a single unit on the gym floor as reported by the data service.
type Machine struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Prediction is the wait forecast for one machine.
type Prediction struct {
	Available  bool `json:"available"`
	TimeToWait int  `json:"time_to_wait"` // minutes
}

// WaitEstimator is the contract services depend on. Estimates fail open:
// when the data service is down, the floor is treated as free.
type WaitEstimator interface {
	ListMachines(ctx context.Context) ([]Machine, error)
	PredictWait(ctx context.Context, machineID string) (*Prediction, error)
	EstimateWait(ctx context.Context, machineIDs []string) (int, string)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	redis      *redis.Client
	cacheTTL   time.Duration
}

var _ WaitEstimator = &Client{}

// NewClient builds a data-service client. redisClient may be nil, in which
// case predictions are fetched fresh on every call.
func NewClient(baseURL string, redisClient *redis.Client, cacheTTL time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		redis:    redisClient,
		cacheTTL: cacheTTL,
	}
}

type machineListResponse struct {
	Machines []Machine `json:"machines"`
}

type predictionResponse struct {
	Data Prediction `json:"data"`
}

func (c *Client) ListMachines(ctx context.Context) ([]Machine, error) {
	var res machineListResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/api/machine/list", c.BaseURL), &res); err != nil {
		return nil, err
	}
	return res.Machines, nil
}

func (c *Client) PredictWait(ctx context.Context, machineID string) (*Prediction, error) {
	cacheKey := "iot:wait:" + machineID

	if c.redis != nil {
		if cached, err := c.redis.Get(ctx, cacheKey).Result(); err == nil {
			var p Prediction
			if json.Unmarshal([]byte(cached), &p) == nil {
				return &p, nil
			}
		}
	}

	var res predictionResponse
	url := fmt.Sprintf("%s/api/machine/%s/prediction", c.BaseURL, machineID)
	if err := c.getJSON(ctx, url, &res); err != nil {
		return nil, err
	}

	if c.redis != nil {
		if raw, err := json.Marshal(res.Data); err == nil {
			// cache write failures are tolerated, prediction is already in hand
			c.redis.Set(ctx, cacheKey, raw, c.cacheTTL)
		}
	}

	return &res.Data, nil
}

// EstimateWait fetches predictions for all given machines concurrently and
// returns the minimum wait in minutes. Any failure fails open to zero wait.
func (c *Client) EstimateWait(ctx context.Context, machineIDs []string) (int, string) {
	if len(machineIDs) == 0 {
		return 0, DatasetSourceFallback
	}

	predictions := make([]*Prediction, len(machineIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, id := range machineIDs {
		g.Go(func() error {
			p, err := c.PredictWait(gctx, id)
			if err != nil {
				return err
			}
			predictions[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, DatasetSourceFallback
	}

	minWait := -1
	for _, p := range predictions {
		wait := p.TimeToWait
		if p.Available {
			wait = 0
		}
		if minWait == -1 || wait < minWait {
			minWait = wait
		}
	}
	if minWait < 0 {
		minWait = 0
	}

	return minWait, DatasetSourceLive
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("data service error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
