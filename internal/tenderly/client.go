package tenderly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tendersim/internal/credentials"

	"go.uber.org/zap"
)

const accessKeyHeader = "X-Access-Key"

// Client calls the remote simulation service on behalf of one credential
// record per request.
type Client struct {
	logs    *zap.SugaredLogger
	client  *http.Client
	baseURL string
}

func NewClient(logger *zap.SugaredLogger, baseURL string) *Client {
	return &Client{
		logs:    logger,
		client:  &http.Client{},
		baseURL: baseURL,
	}
}

// Simulate submits one transaction for simulation and decodes the result. The
// raw body is kept on the response so classification can report it verbatim.
func (c *Client) Simulate(ctx context.Context, simReq SimulationRequest, creds credentials.Record) (*Response, error) {
	url := fmt.Sprintf("%s/account/%s/project/%s/simulate", c.baseURL, creds.UserID, creds.ProjectID)

	payload, err := json.Marshal(simReq)
	if err != nil {
		return nil, fmt.Errorf("marshal simulation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build simulation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessKeyHeader, creds.AccessKey)

	httpResp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit simulation: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read simulation response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode simulation response: %w", err)
	}
	resp.Raw = body

	c.logs.Infow("simulation submitted", "status", httpResp.StatusCode)
	return &resp, nil
}

// Share makes a finished simulation publicly accessible. Callers treat it as
// best effort.
func (c *Client) Share(ctx context.Context, simulationID string, creds credentials.Record) error {
	url := fmt.Sprintf("%s/account/%s/project/%s/simulations/%s/share",
		c.baseURL, creds.UserID, creds.ProjectID, simulationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("build share request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessKeyHeader, creds.AccessKey)

	httpResp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("share simulation: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("share simulation: unexpected status %d", httpResp.StatusCode)
	}

	return nil
}
