package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/mindmate/internal/errors"
	"github.com/diogo/mindmate/internal/models"
)

// chatRequest is the body of a reply request
type chatRequest struct {
	Message string `json:"message"`
}

// Chat posts message to the reply route and decodes the result. A response
// that parses but has no reply is returned without error; callers decide
// what an unusable result means.
func (c *Client) Chat(ctx context.Context, message string) (*models.ReplyResult, error) {
	if c.IsClosed() {
		return nil, fmt.Errorf("client is closed")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	url := c.ChatURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(fmt.Sprintf("no reply from %s after %s", url, c.timeout))
		}
		return nil, apierrors.NewNetworkError("chat", url, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, apierrors.NewNetworkError("read reply", url, err)
	}

	c.logger.Debug("reply received",
		"endpoint", url,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A JSON error body is still read for a reply
		if !gjson.ValidBytes(body) {
			if len(body) > maxErrorBody {
				body = body[:maxErrorBody]
			}
			return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, url, "reply request failed", string(body))
		}
	}

	return parseReply(body)
}

// parseReply decodes a reply body. Invalid JSON is a parse error; valid JSON
// without a string reply yields an unusable result.
func parseReply(body []byte) (*models.ReplyResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("reply body is not valid JSON", "$")
	}

	parsed := gjson.ParseBytes(body)
	result := &models.ReplyResult{}
	if !parsed.IsObject() {
		return result, nil
	}

	if reply := parsed.Get(PathReply); reply.Type == gjson.String {
		result.Reply = reply.String()
		result.HasReply = true
	}

	if crisis := parsed.Get(PathCrisis); crisis.Exists() {
		result.Crisis = crisis.Bool()
	}

	return result, nil
}
