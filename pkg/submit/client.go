package submit

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
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-intake/pkg/form"
)

const (
	claimsPath = "/api/v1/claims/prior_auth"
	uploadPath = "/api/v1/upload/clinical_notes"
)

// Client is a Submitter backed by the prior-authorization claims HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	logger  zerolog.Logger
}

// ClientOption mutates client configuration during NewClient.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if c == nil || httpClient == nil {
			return
		}
		c.http = httpClient
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
// A submission timeout is a property of the transport, not of the form core.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if c == nil || timeout <= 0 {
			return
		}
		clone := *c.http
		clone.Timeout = timeout
		c.http = &clone
	}
}

// WithBearerToken attaches an Authorization header to every request.
func WithBearerToken(token string) ClientOption {
	return func(c *Client) {
		if c == nil {
			return
		}
		c.token = token
	}
}

// WithLogger sets the request logger. The default discards everything.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		if c == nil {
			return
		}
		c.logger = logger
	}
}

// NewClient constructs a claims API client for the given base URL.
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("submit: base url is required")
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(c)
	}
	return c, nil
}

// Submit posts the claim and decodes the acknowledgement receipt. Non-2xx
// responses become a *StatusError carrying the server's reason so the
// controller can surface it verbatim.
func (c *Client) Submit(ctx context.Context, values form.Values) (*Receipt, error) {
	body, err := json.Marshal(NewPayload(values))
	if err != nil {
		return nil, fmt.Errorf("submit: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+claimsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("submit: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", claimsPath).Msg("claim submission failed")
		return nil, fmt.Errorf("submit: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := parseError(resp)
		c.logger.Error().
			Int("status", resp.StatusCode).
			Dur("latency", time.Since(start)).
			Str("path", claimsPath).
			Str("reason", statusErr.Reason).
			Msg("claim rejected")
		return nil, statusErr
	}

	var wire claimResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("submit: decode response: %w", err)
	}
	receipt, err := wire.receipt()
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("claim_reference", receipt.Reference.String()).
		Msg("claim submitted")
	return receipt, nil
}

// Upload is the acknowledgement for a stored supporting document.
type Upload struct {
	Status           string `json:"status"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	SizeBytes        int64  `json:"file_size_bytes"`
	UploadedBy       string `json:"uploaded_by"`
	Message          string `json:"message"`
}

// UploadSupportingNotes stores clinical documentation ahead of a submission.
// The server applies the same extension and size gating as the form core.
func (c *Client) UploadSupportingNotes(ctx context.Context, att form.Attachment, content io.Reader) (*Upload, error) {
	if content == nil {
		return nil, errors.New("submit: attachment content is required")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", att.Name)
	if err != nil {
		return nil, fmt.Errorf("submit: build upload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("submit: read attachment: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("submit: finish upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("submit: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", uploadPath).Msg("upload failed")
		return nil, fmt.Errorf("submit: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := parseError(resp)
		c.logger.Error().
			Int("status", resp.StatusCode).
			Dur("latency", time.Since(start)).
			Str("path", uploadPath).
			Str("reason", statusErr.Reason).
			Msg("upload rejected")
		return nil, statusErr
	}

	var upload Upload
	if err := json.NewDecoder(resp.Body).Decode(&upload); err != nil {
		return nil, fmt.Errorf("submit: decode response: %w", err)
	}

	c.logger.Info().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("filename", upload.Filename).
		Int64("size", upload.SizeBytes).
		Msg("notes uploaded")
	return &upload, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
}

// claimResponse is the wire shape of a successful submission. The timestamp
// is kept raw because the reference backend emits naive local timestamps
// while this repo's server emits RFC 3339.
type claimResponse struct {
	Status         string `json:"status"`
	ClaimReference string `json:"claim_reference"`
	Timestamp      string `json:"timestamp"`
	Message        string `json:"message"`
}

func (r claimResponse) receipt() (*Receipt, error) {
	ref, err := uuid.Parse(r.ClaimReference)
	if err != nil {
		return nil, fmt.Errorf("submit: parse claim reference: %w", err)
	}
	return &Receipt{
		Status:    r.Status,
		Reference: ref,
		Timestamp: parseTimestamp(r.Timestamp),
		Message:   r.Message,
	}, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// parseError extracts the server's reason from an error response. The claims
// API wraps everything under a detail key holding a string, an object with
// error/message fields, or a list of field violations.
func parseError(resp *http.Response) *StatusError {
	statusErr := &StatusError{Code: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(body) == 0 {
		return statusErr
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return statusErr
	}

	statusErr.Reason = detailReason(envelope.Detail)
	return statusErr
}

func detailReason(detail json.RawMessage) string {
	var text string
	if json.Unmarshal(detail, &text) == nil {
		return text
	}

	var object struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(detail, &object) == nil {
		if object.Message != "" {
			return object.Message
		}
		if object.Error != "" {
			return object.Error
		}
	}

	var violations []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(detail, &violations) == nil && len(violations) > 0 {
		return violations[0].Msg
	}
	return ""
}
