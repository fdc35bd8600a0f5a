// Package client talks to the segview annotation backend over its small
// JSON POST protocol.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andareed/segview/logging"
)

// Client is a thin wrapper around the four backend endpoints. There is no
// retry and no cancellation beyond what the caller's context provides.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the backend at baseURL. timeout of zero means no
// timeout, same as the original tool.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Classes fetches the dataset-wide label set.
func (c *Client) Classes(ctx context.Context) ([]Class, error) {
	var resp ClassesResponse
	if err := c.post(ctx, "/get_classes", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Classes, nil
}

// SegmentIDs fetches the full ordered segment list. The list is always
// replaced wholesale, never patched.
func (c *Client) SegmentIDs(ctx context.Context) ([]int, error) {
	var resp ElementsResponse
	if err := c.post(ctx, "/get_elements", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.SegmentIDs, nil
}

// SegmentData fetches one segment's plots, metadata and label assignment,
// windowed server-side by the zoom array.
func (c *Client) SegmentData(ctx context.Context, req DataRequest) (DataResponse, error) {
	var resp DataResponse
	if err := c.post(ctx, "/get_data", req, &resp); err != nil {
		return DataResponse{}, err
	}
	return resp, nil
}

// ToggleClass flips one label on one segment server-side and returns the
// authoritative label state.
func (c *Client) ToggleClass(ctx context.Context, classID, segmentID int) (ToggleResponse, error) {
	var resp ToggleResponse
	req := ToggleRequest{ClassID: classID, SegmentID: segmentID}
	if err := c.post(ctx, "/toggle_class_id", req, &resp); err != nil {
		return ToggleResponse{}, err
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Correlation ID so client and backend debug logs can be lined up.
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	logging.Debugf("client: POST %s req=%s body=%s", path, reqID, payload)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for the log, the caller only needs the status.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logging.Warnf("client: POST %s req=%s status=%d body=%q", path, reqID, resp.StatusCode, snippet)
		return fmt.Errorf("%s: backend returned %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
