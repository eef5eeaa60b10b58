// Package client implements the API client and the per-action state model
// used by the snapdish CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pageza/snapdish/backend/internal/types"
)

// APIClient talks to the SnapDish backend.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client against the given base URL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// Generate submits an encoded image with optional notes and returns the
// recipe list.
func (c *APIClient) Generate(ctx context.Context, imageDataURL, notes string) (*types.GenerateResponse, error) {
	var resp types.GenerateResponse
	err := c.post(ctx, "/api/v1/recipes/generate", types.GenerateRequest{
		ImageDataURL: imageDataURL,
		Notes:        notes,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendMessage forwards a transcript to the delivery endpoint. phoneNumber may
// be blank to use the server's configured default recipient.
func (c *APIClient) SendMessage(ctx context.Context, message, phoneNumber string) (*types.SendMessageResponse, error) {
	var resp types.SendMessageResponse
	err := c.post(ctx, "/api/v1/messages", types.SendMessageRequest{
		Message:     message,
		PhoneNumber: phoneNumber,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) post(ctx context.Context, path string, reqBody, respBody any) error {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr types.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
