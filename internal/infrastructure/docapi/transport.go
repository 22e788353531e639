package docapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/nitinkv/docvault/internal/core/domain"
)

// apiResponse is the API's uniform envelope. Data carries the payload on
// success and usually a message string on failure.
type apiResponse struct {
	Status bool            `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func (c *Client) postJSON(ctx context.Context, path, token string, payload any, operation string) (apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return apiResponse{}, fmt.Errorf("marshal %s request: %w", operation, err)
	}
	return c.post(ctx, path, token, "application/json", bytes.NewReader(body), operation)
}

func (c *Client) postMultipart(ctx context.Context, path, token string, build func(*multipart.Writer) error, operation string) (apiResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := build(writer); err != nil {
		return apiResponse{}, fmt.Errorf("build %s form: %w", operation, err)
	}
	if err := writer.Close(); err != nil {
		return apiResponse{}, fmt.Errorf("close %s form: %w", operation, err)
	}
	return c.post(ctx, path, token, writer.FormDataContentType(), bytes.NewReader(buf.Bytes()), operation)
}

func (c *Client) post(ctx context.Context, path, token, contentType string, body io.Reader, operation string) (apiResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return apiResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return apiResponse{}, fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("token", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apiResponse{}, domain.WrapError(domain.ErrUnavailable, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return apiResponse{}, domain.WrapError(domain.ErrUnauthorized, operation, httpError(resp))
	}
	if resp.StatusCode >= 300 {
		return apiResponse{}, domain.WrapError(domain.ErrUnavailable, operation, httpError(resp))
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return apiResponse{}, domain.WrapError(domain.ErrUnavailable, operation, fmt.Errorf("decode response: %w", err))
	}
	return envelope, nil
}

func httpError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return fmt.Errorf("unexpected status: %s: %s", resp.Status, msg)
}

// rejectionError turns a status:false envelope into an ErrRejected chain
// carrying the server-supplied message, if any.
func rejectionError(operation string, envelope apiResponse) error {
	message := decodeMessage(envelope.Data)
	if message == "" {
		return domain.WrapError(domain.ErrRejected, operation, errors.New("request rejected"))
	}
	return domain.WrapError(domain.ErrRejected, operation, domain.NewRejection(message))
}

func decodeMessage(raw json.RawMessage) string {
	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		return ""
	}
	return strings.TrimSpace(message)
}
