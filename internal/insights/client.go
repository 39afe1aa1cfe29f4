// internal/insights/client.go
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"marketing-advisor/internal/common/config"
	commonerrors "marketing-advisor/internal/common/errors"
	"marketing-advisor/internal/common/logger"
)

// Client calls an external text-generation HTTP API. It performs a single
// blocking request per Generate call; the configured timeout bounds it.
type Client struct {
	cfg    config.InsightsConfig
	client *http.Client
	logger logger.Logger
}

func NewClient(cfg config.InsightsConfig, log logger.Logger) *Client {
	return &Client{
		cfg: cfg,
		// No client-level timeout; the per-request context carries it.
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{"component": "insights-client"}),
	}
}

type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// Generate sends the prompt to the configured service and returns the
// response text verbatim. Failures come back as StandardErrors: a missing
// API key as INSIGHTS_NOT_CONFIGURED, a deadline as INSIGHTS_TIMEOUT, and
// everything else as INSIGHTS_CALL_FAILED.
func (c *Client) Generate(ctx context.Context, prompt string) (string, string, error) {
	if c.cfg.APIKey == "" {
		return "", "", commonerrors.NewInsightsNotConfiguredError()
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.Timeout)*time.Millisecond)
		defer cancel()
	}

	body, _ := json.Marshal(generateRequest{
		Model:       c.cfg.Model,
		Prompt:      prompt,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/ai/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", "", commonerrors.NewInsightsCallFailedError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", "", commonerrors.NewInsightsTimeoutError()
		}
		return "", "", commonerrors.NewInsightsCallFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", commonerrors.NewInsightsCallFailedError(
			fmt.Errorf("insight service returned status %d", resp.StatusCode))
	}

	var apiResponse generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", "", commonerrors.NewInsightsCallFailedError(fmt.Errorf("decode insight response: %w", err))
	}

	model := apiResponse.Model
	if model == "" {
		model = c.cfg.Model
	}

	c.logger.Debug("insight generated", map[string]interface{}{
		"model":      model,
		"textLength": len(apiResponse.Text),
	})

	return apiResponse.Text, model, nil
}
